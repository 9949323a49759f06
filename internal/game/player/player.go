package player

import (
	"errors"

	"cardroom/internal/game/deck"
)

// ErrCardNotInHand indica que a carta pedida não está na mão do jogador.
var ErrCardNotInHand = errors.New("card is not in the player's hand")

// Player representa um participante de uma sala (humano ou bot).
type Player struct {
	// ID é a identidade da conexão, estável e imutável pela vida da conexão.
	ID string

	// Name começa com um rótulo posicional ("Player N") e pode ser sobrescrito
	// pelo cliente.
	Name string

	// Seat é o índice posicional do jogador, atribuído na entrada e imutável.
	// Assentos de quem saiu nunca são reciclados.
	Seat int

	// Hand é a sequência ordenada de cartas do jogador, de posse exclusiva
	// dele; só muda por dealing ou por um comando de play/draw validado.
	Hand deck.Pile

	Ready bool
	Bot   bool
}

// AddToHand coloca uma carta no final da mão.
func (p *Player) AddToHand(c deck.Card) {
	p.Hand = append(p.Hand, c)
}

// RemoveFromHand remove a primeira ocorrência da carta nomeada. Falha com
// ErrCardNotInHand sem alterar a mão quando a carta não está presente.
func (p *Player) RemoveFromHand(c deck.Card) error {
	for i, held := range p.Hand {
		if held == c {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return nil
		}
	}
	return ErrCardNotInHand
}

// SurrenderHand esvazia a mão e retorna as cartas que o jogador segurava.
// Usado quando o jogador sai no meio da partida: as cartas vão para o descarte.
func (p *Player) SurrenderHand() deck.Pile {
	held := p.Hand
	p.Hand = nil
	return held
}
