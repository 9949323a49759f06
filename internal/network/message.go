package network

import "encoding/json"

// Message é o envelope padrão para toda a comunicação cliente <-> servidor.
// O Type serve para roteamento e o Payload carrega os dados do comando ou
// evento, mantidos em JSON bruto para decodificação posterior por quem souber
// interpretá-los.
type Message struct {
	Type    string          `json:"type"`    // Ex: "PLAY_CARD", "ROOM_STATE"
	Payload json.RawMessage `json:"payload,omitempty"`
}
