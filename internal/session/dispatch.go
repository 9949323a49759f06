package session

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"cardroom/internal/game/deck"
	"cardroom/internal/game/player"
	"cardroom/internal/game/turn"
	"cardroom/internal/services/events"
	"cardroom/internal/session/message"
)

// Handlers de ação da sala. Regra central: todo comando rejeitado é um no-op
// silencioso para a máquina de estados, sem nenhuma mutação parcial. O
// remetente pode receber um aviso, mas nada além disso muda ou é difundido.

func (r *Room) handleJoin(id string, sender message.Sender) error {
	p, err := r.registry.Join(id, "", false)
	if err != nil {
		return err
	}

	r.senders[id] = sender
	r.wasOccupied = true

	log.Printf("[Room %s] %s joined (%d/%d seated).", r.Key, id, r.registry.Len(), r.registry.Capacity())

	r.notifyAll(fmt.Sprintf("%s joined the game.", p.Name))

	// O recém-chegado recebe o snapshot completo; os demais recebem o estado
	// atualizado com o novo assento.
	r.pushState()

	r.events.Publish(events.SubjectRoomJoined, roomEvent{
		SessionKey: r.Key,
		PlayerID:   id,
		Seated:     r.registry.Len(),
	})
	return nil
}

func (r *Room) handleLeave(id string) {
	p, ok := r.registry.Get(id)
	if !ok {
		// Comando pendente de uma conexão que já saiu: no-op seguro.
		return
	}

	name := p.Name
	held := p.SurrenderHand()
	r.registry.Leave(id)
	delete(r.senders, id)

	log.Printf("[Room %s] %s left (%d remaining).", r.Key, id, r.registry.Len())

	// Cartas já distribuídas não voltam para quem saiu: a mão abandonada vai
	// para o descarte e continua em circulação via reembaralho.
	if r.tracker.Playing() {
		r.discard = append(r.discard, held...)
	}

	r.notifyAll(fmt.Sprintf("%s left the game.", name))

	// Se o turno apontava para quem saiu, a rotação é resolvida AGORA, antes
	// de qualquer próximo comando, recalculando a pertinência no registro.
	if r.tracker.Playing() && r.tracker.Current() == id {
		r.tracker.Advance(r.registry)
		if next := r.tracker.Current(); next != "" {
			r.announceTurn(next)
		}
	}

	r.pushState()

	r.events.Publish(events.SubjectRoomLeft, roomEvent{
		SessionKey: r.Key,
		PlayerID:   id,
		Seated:     r.registry.Len(),
	})

	if r.registry.Len() == 0 && r.wasOccupied {
		// Sala vazia depois de ocupada: pede o próprio descarte ao manager.
		r.emptied <- r.Key
	}
}

func (r *Room) handleSetName(id, name string) {
	p, ok := r.registry.Get(id)
	if !ok {
		return
	}

	name = strings.TrimSpace(name)
	if name == "" {
		r.rejectCommand(id, "Name cannot be empty.")
		return
	}

	old := p.Name
	p.Name = name

	r.notifyAll(fmt.Sprintf("%s is now known as %s.", old, name))
	r.pushState()
}

func (r *Room) handleSetReady(id string) {
	p, ok := r.registry.Get(id)
	if !ok {
		return
	}

	if r.tracker.Phase() != turn.PhaseWaiting {
		r.rejectCommand(id, "The game has already started.")
		return
	}

	r.registry.SetReady(id, true)
	r.notifyAll(fmt.Sprintf("%s is ready!", p.Name))
	r.pushState()

	// Barreira de prontidão: todos os assentos ocupados prontos dispara a
	// transição para a fase de jogo.
	if r.registry.AllReady() {
		r.startGame()
	}
}

// startGame executa a transição Waiting -> Playing: zera prontidão, distribui
// a mão inicial em ordem de entrada, dá o primeiro turno ao primeiro a entrar
// e emite o evento de início com a mão privada de cada jogador.
func (r *Room) startGame() {
	if !r.tracker.Start(r.registry) {
		return
	}

	r.registry.ResetReadiness()

	seated := r.registry.InJoinOrder()
	for _, p := range seated {
		p.Hand = r.draw.Deal(initial_HAND_SIZE)
	}

	firstTurn := r.tracker.Current()
	log.Printf("[Room %s] Game started with %d players; first turn: %s.", r.Key, len(seated), firstTurn)

	// Cada jogador vê apenas a própria mão; o conteúdo das mãos alheias nunca
	// sai do servidor.
	for _, p := range seated {
		message.Deliver(r.senders[p.ID], message.GameStart(cardKeys(p.Hand), firstTurn))
	}

	r.notifyAll("The game has started!")
	r.pushState()

	r.events.Publish(events.SubjectGameStarted, roomEvent{
		SessionKey: r.Key,
		Seated:     len(seated),
	})
}

func (r *Room) handlePlayCard(id string, card deck.Card) {
	p, ok := r.registry.Get(id)
	if !ok {
		return
	}

	if !r.tracker.Playing() {
		r.rejectCommand(id, "You cannot play a card right now.")
		return
	}

	if r.tracker.Current() != id {
		r.rejectCommand(id, "It is not your turn.")
		return
	}

	// A remoção valida a posse: se a carta não está na mão, nada acontece e o
	// turno NÃO avança.
	if err := p.RemoveFromHand(card); err != nil {
		if errors.Is(err, player.ErrCardNotInHand) {
			r.rejectCommand(id, fmt.Sprintf("You do not hold %s.", card))
			return
		}
		r.rejectCommand(id, fmt.Sprintf("Failed to play card: %v", err))
		return
	}

	r.discard.AddCard(card)
	r.notifyAll(fmt.Sprintf("%s played %s.", p.Name, card))

	r.advanceTurn()
	r.pushState()
}

func (r *Room) handleDrawCard(id string) {
	p, ok := r.registry.Get(id)
	if !ok {
		return
	}

	if !r.tracker.Playing() {
		r.rejectCommand(id, "You cannot draw a card right now.")
		return
	}

	if r.tracker.Current() != id {
		r.rejectCommand(id, "It is not your turn.")
		return
	}

	card, err := deck.Draw(&r.draw, &r.discard, r.rng)
	if err != nil {
		// Ambas as pilhas vazias: no-op avisado, nunca um crash. O turno não
		// avança porque o comando não se aplicou.
		r.rejectCommand(id, "There are no cards left to draw.")
		return
	}

	p.AddToHand(card)

	// Só quem comprou fica sabendo qual carta veio.
	message.Deliver(r.senders[id], message.Notification(fmt.Sprintf("You drew %s.", card)))
	r.notifyAll(fmt.Sprintf("%s drew a card.", p.Name))

	r.advanceTurn()
	r.pushState()
}

// advanceTurn roda a rotação após uma jogada validada e anuncia o novo turno.
func (r *Room) advanceTurn() {
	before := r.tracker.Current()
	r.tracker.Advance(r.registry)

	if next := r.tracker.Current(); next != "" && next != before {
		r.announceTurn(next)
	}
}

// rejectCommand avisa só o remetente; o estado da sala não mudou em nada.
func (r *Room) rejectCommand(id, reason string) {
	message.Deliver(r.senders[id], message.Error(reason))
}

// roomEvent é o payload publicado no barramento de eventos operacionais.
type roomEvent struct {
	SessionKey string `json:"sessionKey"`
	PlayerID   string `json:"playerId,omitempty"`
	Seated     int    `json:"seated,omitempty"`
}
