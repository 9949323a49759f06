package player

import (
	"errors"
	"fmt"
)

// ErrRoomFull indica que a sala já atingiu sua capacidade fixa.
var ErrRoomFull = errors.New("room is full")

// Registry é o conjunto ordenado de participantes de uma sala, chaveado pela
// identidade da conexão. A ordem de inserção é a ordem de entrada, que também
// é a ordem crescente de assentos (assentos nunca são reciclados).
//
// O Registry não tem travas próprias: ele é mutado somente pelo contexto de
// execução serializado da sala dona.
type Registry struct {
	capacity int
	players  map[string]*Player
	order    []string // identidades em ordem de entrada

	// Contador monotônico de assentos. Não reaproveita assentos de quem saiu,
	// para que a rotação de turnos permaneça estável.
	nextSeat int
}

// NewRegistry cria um registro vazio com a capacidade fixa da sala.
func NewRegistry(capacity int) *Registry {
	return &Registry{
		capacity: capacity,
		players:  make(map[string]*Player),
	}
}

// Capacity retorna a capacidade fixa da sala.
func (r *Registry) Capacity() int { return r.capacity }

// Len retorna o número de participantes presentes.
func (r *Registry) Len() int { return len(r.players) }

// Join adiciona um participante. Falha com ErrRoomFull, sem nenhuma mudança
// de estado, quando a sala está cheia. Se name for vazio, o jogador recebe o
// rótulo posicional padrão.
func (r *Registry) Join(id, name string, bot bool) (*Player, error) {
	if len(r.players) >= r.capacity {
		return nil, ErrRoomFull
	}

	seat := r.nextSeat
	r.nextSeat++

	if name == "" {
		name = fmt.Sprintf("Player %d", seat+1)
	}

	p := &Player{
		ID:   id,
		Name: name,
		Seat: seat,
		Bot:  bot,
	}

	r.players[id] = p
	r.order = append(r.order, id)
	return p, nil
}

// Leave remove um participante, junto de todo o seu estado. É idempotente:
// identidade desconhecida é um no-op.
func (r *Registry) Leave(id string) {
	if _, ok := r.players[id]; !ok {
		return
	}

	delete(r.players, id)
	for i, known := range r.order {
		if known == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get retorna o participante com a identidade dada.
func (r *Registry) Get(id string) (*Player, bool) {
	p, ok := r.players[id]
	return p, ok
}

// SetReady marca a prontidão de um participante. Identidade desconhecida é um
// no-op silencioso.
func (r *Registry) SetReady(id string, ready bool) {
	if p, ok := r.players[id]; ok {
		p.Ready = ready
	}
}

// AllReady é verdadeiro se e somente se há participantes e todos estão
// prontos. Um registro vazio nunca está "todo pronto".
func (r *Registry) AllReady() bool {
	if len(r.players) == 0 {
		return false
	}
	for _, p := range r.players {
		if !p.Ready {
			return false
		}
	}
	return true
}

// ResetReadiness desmarca a prontidão de todos, antes de uma nova rodada.
func (r *Registry) ResetReadiness() {
	for _, p := range r.players {
		p.Ready = false
	}
}

// InJoinOrder retorna os participantes na ordem de entrada (= ordem crescente
// de assento). O slice é uma cópia; os ponteiros apontam para o estado vivo.
func (r *Registry) InJoinOrder() []*Player {
	out := make([]*Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id])
	}
	return out
}
