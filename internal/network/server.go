package network

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Server expõe o endpoint WebSocket e gerencia o Hub.
type Server struct {
	hub *Hub
}

// upgrader armazena as configurações para promover uma conexão HTTP a WebSocket.
var upgrader = websocket.Upgrader{
	// Para desenvolvimento, aceitamos qualquer origem. Em produção isso deve
	// ser restringido ao domínio do frontend.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// NewServer aceita um EventHandler e o injeta no Hub. Este é o ponto de
// injeção da lógica de sessões no transporte.
func NewServer(handler EventHandler) *Server {
	return &Server{
		hub: NewHub(handler),
	}
}

// wsHandler promove a requisição HTTP para uma conexão WebSocket persistente,
// atribui a identidade da conexão e inicia as goroutines de leitura e escrita.
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Network] Upgrade failed: %v", err)
		return
	}

	client := &Client{
		id:   uuid.NewString(),
		conn: conn,
		hub:  s.hub,
		send: make(chan Message, 256),
	}

	client.hub.register <- client

	go client.writeLoop()
	go client.readLoop()
}

// Listen inicia a goroutine do Hub, registra a rota /ws e sobe o servidor
// HTTP. A chamada é bloqueante.
func (s *Server) Listen(address string) error {
	go s.hub.Run()

	http.HandleFunc("/ws", s.wsHandler)

	log.Printf("[Network] WebSocket server listening on ws://%s/ws", address)

	return http.ListenAndServe(address, nil)
}
