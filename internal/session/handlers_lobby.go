package session

import (
	"encoding/json"

	"cardroom/internal/session/message"
)

// Comandos aceitos no lobby: criação de sala e entrada por chave.
func (h *GameHandler) registerLobbyHandlers() {
	h.lobbyRouter["CREATE_ROOM"] = handleCreateRoom
	h.lobbyRouter["JOIN_ROOM"] = handleJoinRoom
}

// handleCreateRoom cria uma sala com a capacidade pedida e devolve a chave
// compartilhável. O criador NÃO entra automaticamente: ele entra como
// qualquer um, via JOIN_ROOM com a chave.
func handleCreateRoom(h *GameHandler, session *PlayerSession, payload json.RawMessage) {
	var req struct {
		HumanCount *int `json:"humanCount"`
		BotCount   int  `json:"botCount"`
	}

	if err := json.Unmarshal(payload, &req); err != nil || req.HumanCount == nil {
		message.Deliver(session.Client, message.Error(
			"Invalid payload: 'humanCount' field is required and must be a number."))
		return
	}

	room, err := h.manager.CreateRoom(*req.HumanCount, req.BotCount)
	if err != nil {
		// ErrInvalidCapacity: a sala nunca chegou a existir.
		message.Deliver(session.Client, message.Error(err.Error()))
		return
	}

	message.Deliver(session.Client, message.RoomCreated(room.Key))
}

// handleJoinRoom resolve a chave para uma sala viva e pede a entrada. Os dois
// erros de entrada (sala desconhecida, sala cheia) voltam sincronamente para
// o chamador; só com a entrada aceita a sessão muda de estado.
func handleJoinRoom(h *GameHandler, session *PlayerSession, payload json.RawMessage) {
	var req struct {
		SessionKey string `json:"sessionKey"`
	}

	if err := json.Unmarshal(payload, &req); err != nil || req.SessionKey == "" {
		message.Deliver(session.Client, message.Error(
			"Invalid payload: 'sessionKey' field is required."))
		return
	}

	room := h.manager.GetRoom(req.SessionKey)
	if room == nil {
		message.Deliver(session.Client, message.Error(ErrRoomNotFound.Error()))
		return
	}

	if err := room.Join(session.ID, session.Client); err != nil {
		message.Deliver(session.Client, message.Error(err.Error()))
		return
	}

	session.State = state_IN_ROOM
	session.CurrentRoom = room
}
