package session

import (
	"fmt"

	"cardroom/internal/game/deck"
	"cardroom/internal/network"
	"cardroom/internal/session/message"
)

// Contrato de replicação: a sala expõe uma visão somente-leitura do seu
// estado. A visão completa carrega a mão de todos (por jogador, para que a
// redação seja possível); a camada de mensagens entrega a cada destinatário a
// própria mão e apenas a contagem das demais.

// PlayerView é a projeção replicável de um participante.
type PlayerView struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Seat      int      `json:"seat"`
	Ready     bool     `json:"ready"`
	Bot       bool     `json:"bot"`
	HandCount int      `json:"handCount"`
	Hand      []string `json:"hand,omitempty"`
}

// RoomView é a projeção replicável de uma sala inteira, com os jogadores em
// ordem de assento.
type RoomView struct {
	SessionKey  string       `json:"sessionKey"`
	Phase       string       `json:"phase"`
	Capacity    int          `json:"capacity"`
	CurrentTurn string       `json:"currentTurn,omitempty"`
	Players     []PlayerView `json:"players"`
}

// Snapshot monta a visão completa e desacoplada do estado atual: os slices
// são cópias, então um leitor externo nunca observa mutação concorrente.
func (r *Room) Snapshot() RoomView {
	view := RoomView{
		SessionKey:  r.Key,
		Phase:       string(r.tracker.Phase()),
		Capacity:    r.registry.Capacity(),
		CurrentTurn: r.tracker.Current(),
	}

	for _, p := range r.registry.InJoinOrder() {
		view.Players = append(view.Players, PlayerView{
			ID:        p.ID,
			Name:      p.Name,
			Seat:      p.Seat,
			Ready:     p.Ready,
			Bot:       p.Bot,
			HandCount: p.Hand.Size(),
			Hand:      cardKeys(p.Hand),
		})
	}

	return view
}

// redactFor devolve a visão como o destinatário pode vê-la: a própria mão em
// claro, as demais reduzidas à contagem.
func redactFor(view RoomView, recipient string) RoomView {
	redacted := view
	redacted.Players = make([]PlayerView, len(view.Players))
	copy(redacted.Players, view.Players)

	for i := range redacted.Players {
		if redacted.Players[i].ID != recipient {
			redacted.Players[i].Hand = nil
		}
	}
	return redacted
}

// pushState replica o estado atual para todos os conectados, cada um com a
// sua visão redigida.
func (r *Room) pushState() {
	view := r.Snapshot()
	for id, sender := range r.senders {
		message.Deliver(sender, message.RoomState(redactFor(view, id)))
	}
}

// notifyAll difunde um aviso humano-legível para toda a sala.
func (r *Room) notifyAll(text string) {
	r.broadcast(message.Notification(text))
}

func (r *Room) broadcast(msg network.Message) {
	for _, sender := range r.senders {
		message.Deliver(sender, msg)
	}
}

// announceTurn difunde a troca de turno como evento discreto, além do aviso.
func (r *Room) announceTurn(next string) {
	r.broadcast(message.TurnChange(next))
	if p, ok := r.registry.Get(next); ok {
		r.notifyAll(fmt.Sprintf("It is %s's turn.", p.Name))
	}
}

// cardKeys projeta uma pilha nas chaves string das cartas, o formato que
// trafega no fio.
func cardKeys(p deck.Pile) []string {
	keys := make([]string, len(p))
	for i, c := range p {
		keys[i] = string(c)
	}
	return keys
}
