package message

// Mensagens no sentido servidor -> cliente. Cada construtor monta o envelope
// de rede com o payload já serializado; o cliente roteia pelo Type.

import (
	"encoding/json"
	"log"

	"cardroom/internal/network"
)

// Tipos de evento originados no servidor.
const (
	TypeNotification = "NOTIFICATION"
	TypeRoomCreated  = "ROOM_CREATED"
	TypeRoomState    = "ROOM_STATE"
	TypeGameStart    = "GAME_START"
	TypeTurnChange   = "TURN_CHANGE"
	TypeError        = "RESPONSE_ERROR"
)

// NotificationPayload é um aviso humano-legível para o cliente exibir.
type NotificationPayload struct {
	Text string `json:"text"`
}

// RoomCreatedPayload devolve a chave compartilhável da sala recém-criada.
type RoomCreatedPayload struct {
	SessionKey string `json:"sessionKey"`
}

// GameStartPayload carrega, por jogador, a PRÓPRIA mão distribuída (nunca a
// de outro jogador) e a identidade de quem tem o primeiro turno.
type GameStartPayload struct {
	Hand      []string `json:"hand"`
	FirstTurn string   `json:"firstTurn"`
}

// TurnChangePayload anuncia o novo dono do turno.
type TurnChangePayload struct {
	NewTurn string `json:"newTurn"`
}

// ErrorPayload é a resposta de rejeição para o remetente do comando.
type ErrorPayload struct {
	Error string `json:"error"`
}

func Notification(text string) network.Message {
	return build(TypeNotification, NotificationPayload{Text: text})
}

func RoomCreated(sessionKey string) network.Message {
	return build(TypeRoomCreated, RoomCreatedPayload{SessionKey: sessionKey})
}

func GameStart(hand []string, firstTurn string) network.Message {
	return build(TypeGameStart, GameStartPayload{Hand: hand, FirstTurn: firstTurn})
}

func TurnChange(newTurn string) network.Message {
	return build(TypeTurnChange, TurnChangePayload{NewTurn: newTurn})
}

func Error(text string) network.Message {
	return build(TypeError, ErrorPayload{Error: text})
}

// RoomState embala uma visão de estado já redigida para o destinatário.
func RoomState(view any) network.Message {
	return build(TypeRoomState, view)
}

func build(msgType string, payload any) network.Message {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		// Payloads são structs nossas; falha de marshal é bug de programação.
		log.Printf("[Message] Failed to marshal %s payload: %v", msgType, err)
	}
	return network.Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
}
