package player

import (
	"errors"
	"testing"

	"cardroom/internal/game/deck"
)

func TestJoinAssignsSeatsInOrder(t *testing.T) {
	reg := NewRegistry(3)

	for i, id := range []string{"a", "b", "c"} {
		p, err := reg.Join(id, "", false)
		if err != nil {
			t.Fatalf("Join(%s) error = %v, want nil", id, err)
		}
		if p.Seat != i {
			t.Fatalf("Join(%s) seat = %d, want %d", id, p.Seat, i)
		}
	}

	order := reg.InJoinOrder()
	if len(order) != 3 {
		t.Fatalf("InJoinOrder() len = %d, want 3", len(order))
	}
	for i, p := range order {
		if p.Seat != i {
			t.Fatalf("InJoinOrder()[%d].Seat = %d, want %d", i, p.Seat, i)
		}
	}
}

func TestJoinDefaultName(t *testing.T) {
	reg := NewRegistry(2)

	p1, _ := reg.Join("a", "", false)
	if p1.Name != "Player 1" {
		t.Fatalf("default name = %q, want %q", p1.Name, "Player 1")
	}

	p2, _ := reg.Join("b", "Alice", false)
	if p2.Name != "Alice" {
		t.Fatalf("requested name = %q, want %q", p2.Name, "Alice")
	}
}

func TestJoinRoomFull(t *testing.T) {
	reg := NewRegistry(3)
	reg.Join("a", "", false)
	reg.Join("b", "", false)
	reg.Join("c", "", false)

	if _, err := reg.Join("d", "", false); !errors.Is(err, ErrRoomFull) {
		t.Fatalf("Join on full room error = %v, want ErrRoomFull", err)
	}
	if reg.Len() != 3 {
		t.Fatalf("Len() = %d after rejected join, want 3", reg.Len())
	}
	if _, ok := reg.Get("d"); ok {
		t.Fatal("rejected join left state behind")
	}
}

func TestSeatsNeverRecycled(t *testing.T) {
	reg := NewRegistry(3)
	reg.Join("a", "", false)
	reg.Join("b", "", false)
	reg.Join("c", "", false)

	reg.Leave("b")

	p, err := reg.Join("d", "", false)
	if err != nil {
		t.Fatalf("Join after leave error = %v, want nil", err)
	}
	// O assento 1 ficou vago, mas não volta: a rotação de turnos depende de
	// assentos estáveis.
	if p.Seat != 3 {
		t.Fatalf("seat after churn = %d, want 3", p.Seat)
	}
}

func TestLeaveIdempotent(t *testing.T) {
	reg := NewRegistry(2)
	reg.Join("a", "", false)

	reg.Leave("unknown")
	reg.Leave("a")
	reg.Leave("a")

	if reg.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", reg.Len())
	}
}

func TestSetReadyUnknownIsNoop(t *testing.T) {
	reg := NewRegistry(2)
	reg.Join("a", "", false)

	reg.SetReady("unknown", true)

	p, _ := reg.Get("a")
	if p.Ready {
		t.Fatal("SetReady on unknown id mutated another player")
	}
}

func TestAllReady(t *testing.T) {
	reg := NewRegistry(3)

	if reg.AllReady() {
		t.Fatal("AllReady() = true on empty registry, want false")
	}

	reg.Join("a", "", false)
	reg.Join("b", "", false)

	reg.SetReady("a", true)
	if reg.AllReady() {
		t.Fatal("AllReady() = true with one unready player, want false")
	}

	reg.SetReady("b", true)
	if !reg.AllReady() {
		t.Fatal("AllReady() = false with everyone ready, want true")
	}

	reg.ResetReadiness()
	if reg.AllReady() {
		t.Fatal("AllReady() = true after ResetReadiness, want false")
	}
}

func TestRemoveFromHand(t *testing.T) {
	p := &Player{ID: "a", Hand: deck.Pile{"heartsAce", "spades2", "heartsAce"}}

	if err := p.RemoveFromHand("heartsAce"); err != nil {
		t.Fatalf("RemoveFromHand error = %v, want nil", err)
	}
	// Só a primeira ocorrência sai.
	if len(p.Hand) != 2 || p.Hand[0] != "spades2" || p.Hand[1] != "heartsAce" {
		t.Fatalf("hand after removal = %v", p.Hand)
	}

	if err := p.RemoveFromHand("clubs3"); !errors.Is(err, ErrCardNotInHand) {
		t.Fatalf("RemoveFromHand(absent) error = %v, want ErrCardNotInHand", err)
	}
	if len(p.Hand) != 2 {
		t.Fatalf("failed removal mutated hand: %v", p.Hand)
	}
}

func TestSurrenderHand(t *testing.T) {
	p := &Player{ID: "a", Hand: deck.Pile{"heartsAce", "spades2"}}

	held := p.SurrenderHand()
	if len(held) != 2 {
		t.Fatalf("SurrenderHand() returned %d cards, want 2", len(held))
	}
	if p.Hand.Size() != 0 {
		t.Fatalf("hand size after surrender = %d, want 0", p.Hand.Size())
	}
}
