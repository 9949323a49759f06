package deck

import (
	"errors"
	"math/rand/v2"
)

// ErrDeckExhausted indica que não há mais cartas para comprar: a pilha de
// compra e a de descarte estão ambas vazias.
var ErrDeckExhausted = errors.New("deck exhausted: draw and discard piles are empty")

// Pile é uma sequência ordenada de cartas. O índice 0 é o topo da pilha.
type Pile []Card

// Size retorna o número de cartas na pilha. Seguro para ponteiro nil.
func (p *Pile) Size() int {
	if p == nil {
		return 0
	}
	return len(*p)
}

// Shuffle embaralha a pilha no lugar com Fisher-Yates, uma permutação
// uniforme. O multiset de cartas é preservado: nada é perdido nem duplicado.
func (p *Pile) Shuffle(r *rand.Rand) {
	n := p.Size()
	for i := n - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		(*p)[i], (*p)[j] = (*p)[j], (*p)[i]
	}
}

// Deal remove até n cartas do topo da pilha e as retorna como uma mão. Se a
// pilha tiver menos de n cartas, retorna apenas o que resta (mão parcial);
// comportamento degradado mas definido, não é um erro.
func (p *Pile) Deal(n int) Pile {
	if n < 0 {
		n = 0
	}
	if n > len(*p) {
		n = len(*p)
	}

	hand := make(Pile, n)
	copy(hand, (*p)[:n])
	*p = (*p)[n:]
	return hand
}

// AddCard coloca uma carta no fundo da pilha.
func (p *Pile) AddCard(c Card) {
	*p = append(*p, c)
}

// drawTop remove e retorna a carta do topo.
func (p *Pile) drawTop() (Card, error) {
	if p.Size() == 0 {
		return "", ErrDeckExhausted
	}
	top := (*p)[0]
	*p = (*p)[1:]
	return top, nil
}

// Draw compra uma carta da pilha de compra. Se ela estiver vazia, o descarte
// é reembaralhado e vira a nova pilha de compra (o descarte fica vazio) antes
// da compra. Se ambas estiverem vazias, falha com ErrDeckExhausted.
//
// Centralizar compra/reembaralho aqui garante que o invariante "nenhuma carta
// criada ou destruída" seja verificado em um único lugar.
func Draw(draw, discard *Pile, r *rand.Rand) (Card, error) {
	if draw.Size() == 0 {
		if discard.Size() == 0 {
			return "", ErrDeckExhausted
		}

		*draw = append(*draw, *discard...)
		*discard = (*discard)[:0]
		draw.Shuffle(r)
	}

	return draw.drawTop()
}
