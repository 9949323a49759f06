package deck

// Card é o valor imutável de uma carta, identificado pela chave única
// "<naipe><valor>", ex: "heartsAce". O baralho padrão tem 4 naipes x 13
// valores = 52 cartas únicas; duplicatas nunca existem em um baralho novo.
type Card string

var suits = []string{"hearts", "diamonds", "clubs", "spades"}

var ranks = []string{
	"2", "3", "4", "5", "6", "7", "8", "9", "10",
	"Jack", "Queen", "King", "Ace",
}

// BuildDeck monta um baralho completo de 52 cartas únicas, em ordem
// determinística de construção. Embaralhar é responsabilidade de quem chama.
func BuildDeck() Pile {
	deck := make(Pile, 0, len(suits)*len(ranks))
	for _, suit := range suits {
		for _, rank := range ranks {
			deck = append(deck, Card(suit+rank))
		}
	}
	return deck
}
