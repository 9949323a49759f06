package turn

import (
	"cardroom/internal/game/player"
)

// Phase é o estado grosso de uma sessão de jogo.
type Phase string

const (
	// PhaseWaiting: sala aberta, esperando todos sinalizarem prontidão.
	PhaseWaiting Phase = "waiting"
	// PhasePlaying: cartas distribuídas, turnos rodando.
	PhasePlaying Phase = "playing"
	// PhaseFinished é um ponto de extensão (fim de partida); o comportamento
	// mínimo nunca entra nela, mas nada aqui a impede.
	PhaseFinished Phase = "finished"
)

// Tracker acompanha a fase da partida e de quem é o turno. Ele nunca guarda
// índices para dentro da lista de jogadores: a pertinência é recalculada a
// partir do Registry a cada avanço, então um jogador removido jamais é
// referenciado por um turno.
type Tracker struct {
	phase Phase

	// Identidade do jogador do turno atual. Válido apenas em PhasePlaying.
	current string

	// Assento do jogador do turno atual no momento em que o turno foi
	// atribuído. É a âncora da rotação quando o jogador atual sai da sala.
	currentSeat int
}

// NewTracker cria um tracker na fase inicial Waiting.
func NewTracker() *Tracker {
	return &Tracker{phase: PhaseWaiting}
}

func (t *Tracker) Phase() Phase    { return t.phase }
func (t *Tracker) Current() string { return t.current }

// Playing é um atalho para Phase() == PhasePlaying.
func (t *Tracker) Playing() bool { return t.phase == PhasePlaying }

// Start entra em PhasePlaying e dá o primeiro turno ao primeiro jogador em
// ordem de entrada (assento mais baixo). Escolha determinística: qualquer
// cliente consegue prever o primeiro turno só pelo estado replicado. Retorna
// false, sem mudança de estado, se a transição não é válida.
func (t *Tracker) Start(reg *player.Registry) bool {
	if t.phase != PhaseWaiting || reg.Len() == 0 {
		return false
	}

	first := reg.InJoinOrder()[0]
	t.phase = PhasePlaying
	t.current = first.ID
	t.currentSeat = first.Seat
	return true
}

// Advance passa o turno para o próximo jogador em ordem de assento, dando a
// volta. A pertinência vem do Registry no momento da chamada:
//   - se o jogador atual saiu da sala, o próximo é resolvido a partir do
//     assento que ele ocupava, nunca da identidade removida;
//   - com um único jogador restante, o turno fica fixo nele;
//   - com zero jogadores, o turno é limpo.
func (t *Tracker) Advance(reg *player.Registry) {
	if t.phase != PhasePlaying {
		return
	}

	seated := reg.InJoinOrder()
	if len(seated) == 0 {
		t.current = ""
		return
	}

	// Próximo assento estritamente maior que o assento âncora; se não houver,
	// a rotação dá a volta para o menor assento ocupado.
	next := seated[0]
	for _, p := range seated {
		if p.Seat > t.currentSeat {
			next = p
			break
		}
	}

	t.current = next.ID
	t.currentSeat = next.Seat
}
