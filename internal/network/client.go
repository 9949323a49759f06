package network

import (
	"log"
	"net"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Tempo máximo para uma escrita na conexão completar.
	writeWait = 10 * time.Second

	// Tempo máximo para aguardar por um pong do cliente.
	pongWait = 60 * time.Second

	// Frequência com que enviamos pings. Deve ser menor que pongWait.
	pingPeriod = (pongWait * 9) / 10
)

// Client é a representação de um participante conectado do ponto de vista do
// servidor. Ele agrupa a identidade estável da conexão, a conexão WebSocket e
// o canal de saída.
type Client struct {
	// Identidade estável da conexão, atribuída no upgrade e imutável até a
	// desconexão. É a chave pela qual o núcleo do jogo conhece este cliente.
	id string

	conn *websocket.Conn

	// Referência ao Hub central, usada para (des)registro e entrega de mensagens.
	hub *Hub

	// Canal bufferizado de mensagens de saída. A sala coloca mensagens aqui e a
	// goroutine writeLoop as envia. O buffer evita que o núcleo bloqueie em um
	// cliente lento.
	send chan Message
}

// ID retorna a identidade estável da conexão.
func (c *Client) ID() string {
	return c.id
}

// Conn retorna a conexão subjacente, útil para logs com o endereço remoto.
func (c *Client) Conn() net.Conn {
	return c.conn.UnderlyingConn()
}

// Send retorna o canal de saída do cliente.
func (c *Client) Send() chan<- Message {
	return c.send
}

func (c *Client) readLoop() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	// O deadline de leitura é renovado a cada pong recebido; se o cliente parar
	// de responder, a leitura falha e a conexão é derrubada.
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[Network] Unexpected close from client %s: %v", c.id, err)
			}
			break
		}

		// Empacota a mensagem com o cliente e entrega ao Hub, que serializa o
		// processamento de todas as conexões.
		c.hub.incoming <- clientMessage{client: c, msg: msg}
	}
}

// writeLoop bombeia mensagens do canal 'send' para a conexão WebSocket e
// mantém a conexão viva com pings periódicos.
func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			// O canal foi fechado pelo Hub: o cliente foi desregistrado.
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
