package session

import (
	"encoding/json"
	"fmt"
	"log"

	"cardroom/internal/network"
	"cardroom/internal/session/message"
)

// CommandHandlerFunc é a assinatura de todos os handlers de comando. Eles
// recebem o contexto da sessão e o payload bruto da mensagem.
type CommandHandlerFunc func(h *GameHandler, session *PlayerSession, payload json.RawMessage)

// GameHandler implementa network.EventHandler: é o ponto único de chegada de
// todos os comandos de clientes, invocado exclusivamente pela goroutine do
// Hub. Daqui, comandos de sala são encaminhados para a fila serializada da
// sala alvo, na ordem de chegada.
type GameHandler struct {
	sessions map[*network.Client]*PlayerSession
	manager  *RoomManager

	// Um roteador por estado de sessão.
	lobbyRouter map[string]CommandHandlerFunc
	roomRouter  map[string]CommandHandlerFunc
}

// NewGameHandler monta o handler e registra os roteadores de comando. O
// RoomManager deve estar com seu ator rodando.
func NewGameHandler(manager *RoomManager) *GameHandler {
	h := &GameHandler{
		sessions:    make(map[*network.Client]*PlayerSession),
		manager:     manager,
		lobbyRouter: make(map[string]CommandHandlerFunc),
		roomRouter:  make(map[string]CommandHandlerFunc),
	}
	h.registerLobbyHandlers()
	h.registerRoomHandlers()
	return h
}

// --- Implementação da interface network.EventHandler ---

func (h *GameHandler) OnConnect(c *network.Client) {
	session := NewPlayerSession(c)
	h.sessions[c] = session

	log.Printf("[Session] %s connected. Total sessions: %d", session.ID, len(h.sessions))

	message.Deliver(c, message.Notification(
		"Welcome! Create a room, or join one with its key."))
}

func (h *GameHandler) OnDisconnect(c *network.Client) {
	session, ok := h.sessions[c]
	if !ok {
		return
	}

	// Desconexão dentro de uma sala equivale a sair dela. O encaminhamento é
	// fire-and-forget: a sala trata a saída na sua própria fila.
	if session.State == state_IN_ROOM && session.CurrentRoom != nil {
		session.CurrentRoom.Forward(leaveAction{id: session.ID})
	}

	delete(h.sessions, c)
	log.Printf("[Session] %s disconnected. Total sessions: %d", session.ID, len(h.sessions))
}

func (h *GameHandler) OnMessage(c *network.Client, msg network.Message) {
	session, ok := h.sessions[c]
	if !ok {
		// Mensagem de um cliente sem sessão: ignora.
		return
	}

	var router map[string]CommandHandlerFunc
	switch session.State {
	case state_LOBBY:
		router = h.lobbyRouter
	case state_IN_ROOM:
		router = h.roomRouter
	default:
		message.Deliver(c, message.Error(fmt.Sprintf("Invalid session state: %s", session.State)))
		return
	}

	handler, found := router[msg.Type]
	if !found {
		message.Deliver(c, message.Error(fmt.Sprintf("Unknown or invalid command for your current state: %s", msg.Type)))
		return
	}

	handler(h, session, msg.Payload)
}
