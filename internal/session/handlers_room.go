package session

import (
	"encoding/json"

	"cardroom/internal/game/deck"
	"cardroom/internal/session/message"
)

// Comandos aceitos dentro de uma sala. Todos são encaminhados para a fila
// serializada da sala; a validação de fase/turno/posse acontece lá, nunca
// aqui.
func (h *GameHandler) registerRoomHandlers() {
	h.roomRouter["SET_NAME"] = handleSetName
	h.roomRouter["SET_READY"] = handleSetReady
	h.roomRouter["PLAY_CARD"] = handlePlayCard
	h.roomRouter["DRAW_CARD"] = handleDrawCard
	h.roomRouter["LEAVE_ROOM"] = handleLeaveRoom
}

func handleSetName(h *GameHandler, session *PlayerSession, payload json.RawMessage) {
	var req struct {
		Name string `json:"name"`
	}

	if err := json.Unmarshal(payload, &req); err != nil || req.Name == "" {
		message.Deliver(session.Client, message.Error(
			"Invalid payload: 'name' field is required."))
		return
	}

	session.CurrentRoom.Forward(setNameAction{id: session.ID, name: req.Name})
}

func handleSetReady(h *GameHandler, session *PlayerSession, payload json.RawMessage) {
	session.CurrentRoom.Forward(setReadyAction{id: session.ID})
}

func handlePlayCard(h *GameHandler, session *PlayerSession, payload json.RawMessage) {
	var req struct {
		Card string `json:"card"`
	}

	if err := json.Unmarshal(payload, &req); err != nil || req.Card == "" {
		message.Deliver(session.Client, message.Error(
			"Invalid payload: 'card' field is required."))
		return
	}

	session.CurrentRoom.Forward(playCardAction{id: session.ID, card: deck.Card(req.Card)})
}

func handleDrawCard(h *GameHandler, session *PlayerSession, payload json.RawMessage) {
	session.CurrentRoom.Forward(drawCardAction{id: session.ID})
}

// handleLeaveRoom devolve a sessão ao lobby imediatamente e deixa a sala
// processar a saída na sua fila. Comandos dessa identidade que já estavam
// enfileirados viram no-ops seguros contra um registro que não a contém mais.
func handleLeaveRoom(h *GameHandler, session *PlayerSession, payload json.RawMessage) {
	room := session.CurrentRoom

	session.State = state_LOBBY
	session.CurrentRoom = nil

	room.Forward(leaveAction{id: session.ID})

	message.Deliver(session.Client, message.Notification("You have returned to the lobby."))
}
