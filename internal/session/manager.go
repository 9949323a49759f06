package session

import (
	"errors"
	"log"
	"math/rand/v2"
	"time"

	"cardroom/internal/services/events"
)

// Erros de criação e entrada em sala. Ambos são sinalizados sincronamente a
// quem chamou; uma sala que falha na criação nunca chega a existir.
var (
	ErrInvalidCapacity = errors.New("total players must be between 1 and 6")
	ErrRoomNotFound    = errors.New("room not found")
)

const (
	minRoomCapacity = 1
	maxRoomCapacity = 6
)

// RoomManager (o ator) é o dono do ciclo de vida de todas as salas vivas:
// criação com chave única, roteamento por chave e descarte. O mapa de salas
// só é tocado pela goroutine do Run.
type RoomManager struct {
	rooms     map[string]*Room
	requestCh chan any

	// Salas avisam aqui quando esvaziam depois de ocupadas.
	emptied chan string

	rng    *rand.Rand
	events *events.Publisher
}

// NewRoomManager cria o manager. O publisher pode ser nil quando não há
// broker de eventos configurado.
func NewRoomManager(pub *events.Publisher) *RoomManager {
	return &RoomManager{
		rooms:     make(map[string]*Room),
		requestCh: make(chan any),
		emptied:   make(chan string, 16),
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
		events:    pub,
	}
}

// --- Mensagens para o ator ---

type createRoomRequest struct {
	humanCount int
	botCount   int
	reply      chan createRoomReply
}

type createRoomReply struct {
	room *Room
	err  error
}

type getRoomRequest struct {
	key   string
	reply chan *Room
}

type disposeRequest struct{ key string }

// --- API pública do ator ---

// CreateRoom valida a capacidade pedida e cria uma sala nova com chave única
// e baralho embaralhado. Falha com ErrInvalidCapacity fora de 1..6.
func (rm *RoomManager) CreateRoom(humanCount, botCount int) (*Room, error) {
	reply := make(chan createRoomReply, 1)
	rm.requestCh <- createRoomRequest{humanCount: humanCount, botCount: botCount, reply: reply}
	res := <-reply
	return res.room, res.err
}

// GetRoom resolve uma chave de sala para a sala viva, ou nil se desconhecida.
// É por aqui que o join-by-key roteia.
func (rm *RoomManager) GetRoom(key string) *Room {
	reply := make(chan *Room, 1)
	rm.requestCh <- getRoomRequest{key: key, reply: reply}
	return <-reply
}

// Dispose descarta uma sala administrativamente, liberando seus recursos.
// Idempotente: chave desconhecida é um no-op.
func (rm *RoomManager) Dispose(key string) {
	rm.requestCh <- disposeRequest{key: key}
}

// Run é o loop do ator.
func (rm *RoomManager) Run() {
	log.Println("[RoomManager] Actor started.")

	for {
		select {
		case msg := <-rm.requestCh:
			switch req := msg.(type) {
			case createRoomRequest:
				room, err := rm.createRoom(req.humanCount, req.botCount)
				req.reply <- createRoomReply{room: room, err: err}

			case getRoomRequest:
				req.reply <- rm.rooms[req.key]

			case disposeRequest:
				rm.disposeRoom(req.key, "administrative disposal")
			}

		case key := <-rm.emptied:
			rm.disposeRoom(key, "room emptied")
		}
	}
}

// createRoom roda dentro da goroutine do ator.
func (rm *RoomManager) createRoom(humanCount, botCount int) (*Room, error) {
	if humanCount < 0 || botCount < 0 {
		return nil, ErrInvalidCapacity
	}

	capacity := humanCount + botCount
	if capacity < minRoomCapacity || capacity > maxRoomCapacity {
		return nil, ErrInvalidCapacity
	}

	// Checagem de colisão da chave contra as salas vivas.
	key := generateGameKey(rm.rng)
	for {
		if _, taken := rm.rooms[key]; !taken {
			break
		}
		key = generateGameKey(rm.rng)
	}

	roomRNG := rand.New(rand.NewPCG(rm.rng.Uint64(), rm.rng.Uint64()))
	room := NewRoom(key, capacity, botCount, roomRNG, rm.emptied, rm.events)

	rm.rooms[key] = room
	go room.Run()

	log.Printf("[RoomManager] Room %s created (capacity %d, %d bots). Live rooms: %d",
		key, capacity, botCount, len(rm.rooms))

	rm.events.Publish(events.SubjectRoomCreated, roomEvent{
		SessionKey: key,
		Seated:     botCount,
	})

	return room, nil
}

// disposeRoom roda dentro da goroutine do ator. Idempotente.
func (rm *RoomManager) disposeRoom(key, reason string) {
	room, ok := rm.rooms[key]
	if !ok {
		return
	}

	delete(rm.rooms, key)
	room.Stop()

	log.Printf("[RoomManager] Room %s disposed (%s). Live rooms: %d", key, reason, len(rm.rooms))

	rm.events.Publish(events.SubjectRoomDisposed, roomEvent{SessionKey: key})
}
