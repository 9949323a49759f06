package session

import (
	"cardroom/internal/network"
)

// Estados de uma sessão de jogador, usados para selecionar o roteador de
// comandos.
const (
	state_LOBBY   = "lobby"   // Conectado, fora de qualquer sala.
	state_IN_ROOM = "in-room" // Sentado em uma sala.
)

// PlayerSession representa um participante conectado do ponto de vista da
// camada de sessões. Os campos mutáveis (State, CurrentRoom) são tocados
// apenas pela goroutine do Hub.
type PlayerSession struct {
	// ID é a identidade estável da conexão, emitida pelo transporte.
	ID string

	Client *network.Client

	State       string
	CurrentRoom *Room
}

// NewPlayerSession cria a sessão de um cliente recém-conectado, no lobby.
func NewPlayerSession(client *network.Client) *PlayerSession {
	return &PlayerSession{
		ID:     client.ID(),
		Client: client,
		State:  state_LOBBY,
	}
}
