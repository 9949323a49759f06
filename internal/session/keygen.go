package session

import (
	"math/rand/v2"
	"strings"
)

// Alfabeto sem caracteres ambíguos (0/O, 1/I/L) para uma chave que uma pessoa
// consegue ditar em voz alta.
const keyAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const keyLength = 6

// generateGameKey produz uma chave de sala curta e compartilhável. A
// unicidade entre salas vivas é responsabilidade do RoomManager, que checa
// colisões contra o mapa de salas antes de aceitar a chave.
func generateGameKey(r *rand.Rand) string {
	var sb strings.Builder
	sb.Grow(keyLength)
	for i := 0; i < keyLength; i++ {
		sb.WriteByte(keyAlphabet[r.IntN(len(keyAlphabet))])
	}
	return sb.String()
}
