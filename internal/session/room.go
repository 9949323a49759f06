package session

import (
	"fmt"
	"log"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"cardroom/internal/game/deck"
	"cardroom/internal/game/player"
	"cardroom/internal/game/turn"
	"cardroom/internal/services/events"
	"cardroom/internal/session/message"
)

const initial_HAND_SIZE = 6

// Room é uma sessão isolada de jogo: a fonte única de verdade sobre o estado
// da partida. Todo o estado interno (registro de jogadores, pilhas, turno) é
// mutado exclusivamente pela goroutine do Run, um comando por vez. É isso
// que dispensa travas e garante que cada comando se aplica por inteiro ou não
// se aplica.
type Room struct {
	// Key é o identificador compartilhável da sala, também usado como chave de
	// roteamento no RoomManager.
	Key string

	registry *player.Registry
	tracker  *turn.Tracker

	// Pilha de compra e pilha de descarte. O topo é o índice 0.
	draw    deck.Pile
	discard deck.Pile

	rng *rand.Rand

	// Canal de saída por jogador, chaveado pela identidade da conexão. A sala
	// só escreve; nunca espera confirmação.
	senders map[string]message.Sender

	// Fila serializada de ações (joins, saídas e comandos de clientes), na
	// ordem de chegada.
	incoming chan any

	quit     chan struct{}
	stopOnce sync.Once

	// Canal por onde a sala avisa o RoomManager que ficou vazia e pode ser
	// descartada.
	emptied chan<- string

	// A sala só é recolhida por esvaziamento depois de ter sido ocupada.
	wasOccupied bool

	events *events.Publisher
}

// --- Ações aceitas pela fila da sala ---

type joinRequest struct {
	id     string
	sender message.Sender
	reply  chan error
}

type leaveAction struct{ id string }

type setNameAction struct {
	id   string
	name string
}

type setReadyAction struct{ id string }

type playCardAction struct {
	id   string
	card deck.Card
}

type drawCardAction struct{ id string }

// NewRoom monta uma sala com capacidade fixa (humanos + bots), baralho novo
// já embaralhado e os bots solicitados já sentados. Bots estão sempre
// prontos: a barreira de prontidão passa a depender só dos humanos.
func NewRoom(key string, capacity, botCount int, rng *rand.Rand, emptied chan<- string, pub *events.Publisher) *Room {
	r := &Room{
		Key:      key,
		registry: player.NewRegistry(capacity),
		tracker:  turn.NewTracker(),
		rng:      rng,
		senders:  make(map[string]message.Sender),
		incoming: make(chan any, 64),
		quit:     make(chan struct{}),
		emptied:  emptied,
		events:   pub,
	}

	r.draw = deck.BuildDeck()
	r.draw.Shuffle(r.rng)

	for i := 0; i < botCount; i++ {
		bot, err := r.registry.Join(newBotID(), fmt.Sprintf("Bot %d", i+1), true)
		if err != nil {
			// Capacidade já foi validada pelo RoomManager; não há como os bots
			// excederem a sala aqui.
			break
		}
		bot.Ready = true
	}

	return r
}

// Run é o loop do ator da sala. Processa uma ação por vez até o RoomManager
// sinalizar o descarte.
func (r *Room) Run() {
	log.Printf("[Room %s] Session loop started (capacity %d).", r.Key, r.registry.Capacity())
	defer log.Printf("[Room %s] Session loop stopped.", r.Key)

	for {
		select {
		case action := <-r.incoming:
			r.apply(action)
		case <-r.quit:
			return
		}
	}
}

// apply despacha uma única ação. Sempre chamado da goroutine do Run (ou de um
// teste, que exercita a sala de forma síncrona).
func (r *Room) apply(action any) {
	switch act := action.(type) {
	case joinRequest:
		act.reply <- r.handleJoin(act.id, act.sender)
	case leaveAction:
		r.handleLeave(act.id)
	case setNameAction:
		r.handleSetName(act.id, act.name)
	case setReadyAction:
		r.handleSetReady(act.id)
	case playCardAction:
		r.handlePlayCard(act.id, act.card)
	case drawCardAction:
		r.handleDrawCard(act.id)
	default:
		log.Printf("[Room %s] Unknown action %T ignored.", r.Key, action)
	}
}

// Join pede entrada na sala e espera a resposta do ator. Retorna
// player.ErrRoomFull com a sala cheia, ou ErrRoomNotFound se a sala foi
// descartada no meio do caminho.
func (r *Room) Join(id string, sender message.Sender) error {
	reply := make(chan error, 1)

	select {
	case r.incoming <- joinRequest{id: id, sender: sender, reply: reply}:
	case <-r.quit:
		return ErrRoomNotFound
	}

	select {
	case err := <-reply:
		return err
	case <-r.quit:
		return ErrRoomNotFound
	}
}

// Forward enfileira uma ação sem esperar resultado. Ações para uma sala já
// descartada são descartadas junto.
func (r *Room) Forward(action any) {
	select {
	case r.incoming <- action:
	case <-r.quit:
	}
}

// Stop encerra a goroutine da sala. Idempotente; chamado só pelo RoomManager.
func (r *Room) Stop() {
	r.stopOnce.Do(func() { close(r.quit) })
}

// newBotID gera uma identidade sintética para um bot, no mesmo espaço de
// chaves das identidades de conexão.
func newBotID() string {
	return "bot-" + uuid.NewString()
}
