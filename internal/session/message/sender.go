package message

import (
	"log"

	"cardroom/internal/network"
)

// Sender é qualquer destino capaz de receber uma mensagem de saída. A
// interface desacopla este pacote de implementações concretas como o
// network.Client real ou os senders de captura usados em teste.
type Sender interface {
	Send() chan<- network.Message
}

// Deliver entrega uma mensagem sem nunca bloquear o chamador. O núcleo da
// sessão é fire-and-forget: se o buffer de saída do cliente estiver cheio, a
// mensagem é descartada e registrada, e o processamento do próximo comando
// segue normalmente.
func Deliver(s Sender, msg network.Message) {
	if s == nil {
		return
	}
	select {
	case s.Send() <- msg:
	default:
		log.Printf("[Message] Outbound buffer full, dropping %s", msg.Type)
	}
}
