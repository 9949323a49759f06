package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

// Assuntos publicados pelo servidor de sessões. Consumidores operacionais
// (monitoramento, métricas de salas) assinam estes assuntos; o núcleo do jogo
// nunca espera resposta deles.
const (
	SubjectRoomCreated  = "cardroom.room.created"
	SubjectRoomJoined   = "cardroom.room.joined"
	SubjectRoomLeft     = "cardroom.room.left"
	SubjectRoomDisposed = "cardroom.room.disposed"
	SubjectGameStarted  = "cardroom.game.started"
)

// Publisher encapsula a conexão NATS usada para publicar eventos de ciclo de
// vida das salas. Um Publisher nil é válido e descarta tudo silenciosamente,
// para que o servidor funcione sem broker configurado.
type Publisher struct {
	conn *nats.Conn
}

// Connect abre a conexão com o broker NATS.
func Connect(url string) (*Publisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("cardroom-session"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, err
	}
	log.Printf("[Events] Connected to NATS at %s", url)
	return &Publisher{conn: conn}, nil
}

// Publish serializa o payload e publica no assunto dado, fire-and-forget.
// Falhas são registradas e nunca propagadas: um broker fora do ar não pode
// travar nem corromper uma sessão de jogo.
func (p *Publisher) Publish(subject string, payload any) {
	if p == nil || p.conn == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Events] Failed to marshal payload for %s: %v", subject, err)
		return
	}

	if err := p.conn.Publish(subject, data); err != nil {
		log.Printf("[Events] Failed to publish %s: %v", subject, err)
	}
}

// Close drena e fecha a conexão com o broker.
func (p *Publisher) Close() {
	if p == nil || p.conn == nil {
		return
	}
	p.conn.Drain()
}
