package network

// EventHandler é a interface que conecta a camada de rede com a lógica de
// sessões. O pacote de jogo (fora deste pacote) implementa esta interface;
// todos os callbacks são invocados pela goroutine do Hub, um de cada vez.
type EventHandler interface {
	// OnConnect é chamado quando um novo cliente completa o upgrade WebSocket.
	OnConnect(c *Client)

	// OnDisconnect é chamado quando um cliente se desconecta, por qualquer motivo.
	OnDisconnect(c *Client)

	// OnMessage é chamado para cada mensagem recebida de um cliente, na ordem
	// de chegada.
	OnMessage(c *Client, msg Message)
}
