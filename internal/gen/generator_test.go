package gen

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dmfelipe/lotogen/internal/lottery"
	"github.com/dmfelipe/lotogen/internal/track"
)

func testRequest() Request {
	return Request{
		TargetGames: 25,
		Seed:        lottery.DefaultSeed,
		Rule:        lottery.Rule{MinDesired: 1, MaxNumber: lottery.MaxNumber},
	}
}

func mustRun(t *testing.T, req Request) *Result {
	t.Helper()
	res, err := New(zerolog.Nop()).Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

func TestRunReachesTarget(t *testing.T) {
	req := testRequest()
	req.InitialGames = []lottery.Game{
		{1, 2, 3, 4, 5, 6},
		{7, 8, 9, 10, 11, 12},
	}

	res := mustRun(t, req)

	if len(res.Games) != req.TargetGames {
		t.Fatalf("got %d games, want %d", len(res.Games), req.TargetGames)
	}
	if res.Summary.Seeded != 2 {
		t.Errorf("Seeded = %d, want 2", res.Summary.Seeded)
	}
	if res.Summary.Accepted != req.TargetGames {
		t.Errorf("Accepted = %d, want %d", res.Summary.Accepted, req.TargetGames)
	}

	// Initial games come first, in input order.
	for i, want := range req.InitialGames {
		if !reflect.DeepEqual(res.Games[i], want) {
			t.Errorf("games[%d] = %v, want initial game %v", i, res.Games[i], want)
		}
	}

	if res.GameRanks.Len() < len(res.Games) {
		t.Errorf("game tracker holds %d ranks for %d games", res.GameRanks.Len(), len(res.Games))
	}
	if want := len(res.Games) * 20; res.TripletRanks.Len() != want {
		t.Errorf("triplet tracker holds %d ranks, want %d", res.TripletRanks.Len(), want)
	}
}

// Every game must be a valid ascending 6-subset, no game may repeat,
// and no two games may share a triplet.
func TestRunGlobalInvariants(t *testing.T) {
	req := testRequest()
	req.TargetGames = 50
	res := mustRun(t, req)

	gameRanks := track.NewRankSet()
	tripletRanks := track.NewRankSet()
	for _, game := range res.Games {
		if len(game) != lottery.GameSize {
			t.Fatalf("game %v has %d numbers", game, len(game))
		}
		for i := 1; i < len(game); i++ {
			if game[i] <= game[i-1] {
				t.Fatalf("game %v is not strictly ascending", game)
			}
		}
		if game[0] < 1 || game[len(game)-1] > lottery.MaxNumber {
			t.Fatalf("game %v leaves the universe", game)
		}
		if !gameRanks.Add(lottery.GameRank(game)) {
			t.Errorf("game %v appears twice", game)
		}
		if !tripletRanks.AddAll(lottery.TripletRanks(game)) {
			t.Errorf("game %v shares a triplet with an earlier game", game)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	req := testRequest()
	req.TargetGames = 40
	req.Seed = 777

	first := mustRun(t, req)
	second := mustRun(t, req)

	if !reflect.DeepEqual(first.Games, second.Games) {
		t.Error("two runs with the same seed produced different game sequences")
	}
	if first.Summary.Attempts != second.Summary.Attempts {
		t.Errorf("attempt counts differ: %d != %d",
			first.Summary.Attempts, second.Summary.Attempts)
	}

	req.Seed = 778
	third := mustRun(t, req)
	if reflect.DeepEqual(first.Games, third.Games) {
		t.Error("different seeds produced identical game sequences")
	}
}

func TestRunFatalOnInvalidInitialGame(t *testing.T) {
	req := testRequest()
	req.Rule = lottery.Rule{MinDesired: 31, MaxNumber: 60}
	req.InitialGames = []lottery.Game{{30, 35, 41, 48, 50, 59}}

	_, err := New(zerolog.Nop()).Run(context.Background(), req)
	if err == nil {
		t.Fatal("Run accepted an initial game below min_desired_number")
	}
	if !strings.Contains(err.Error(), "30") {
		t.Errorf("error %q does not identify the offending game", err)
	}
}

func TestRunFatalOnSeedTripletCollision(t *testing.T) {
	req := testRequest()
	req.InitialGames = []lottery.Game{
		{1, 2, 3, 4, 5, 6},
		{1, 2, 3, 40, 50, 60}, // shares triplet 1-2-3
	}

	_, err := New(zerolog.Nop()).Run(context.Background(), req)
	if err == nil {
		t.Fatal("Run accepted initial games sharing a triplet")
	}
	if !strings.Contains(err.Error(), "triplet") {
		t.Errorf("error %q does not mention the triplet collision", err)
	}
}

func TestRunTargetAlreadyMet(t *testing.T) {
	req := testRequest()
	req.TargetGames = 2
	req.InitialGames = []lottery.Game{
		{1, 2, 3, 4, 5, 6},
		{7, 8, 9, 10, 11, 12},
	}

	res := mustRun(t, req)
	if res.Summary.Attempts != 0 {
		t.Errorf("Attempts = %d with target already met, want 0", res.Summary.Attempts)
	}
	if len(res.Games) != 2 {
		t.Errorf("got %d games, want the 2 initial games", len(res.Games))
	}
}

func TestRunSpaceExhausted(t *testing.T) {
	req := testRequest()
	// Only one valid game exists in this window; a second can never be
	// accepted.
	req.Rule = lottery.Rule{MinDesired: 55, MaxNumber: 60}
	req.TargetGames = 2
	req.MaxAttempts = 5000

	_, err := New(zerolog.Nop()).Run(context.Background(), req)
	if !errors.Is(err, ErrSpaceExhausted) {
		t.Fatalf("err = %v, want ErrSpaceExhausted", err)
	}
}

func TestRunHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := testRequest()
	_, err := New(zerolog.Nop()).Run(ctx, req)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestRunRejectsNonPositiveTarget(t *testing.T) {
	req := testRequest()
	req.TargetGames = 0

	if _, err := New(zerolog.Nop()).Run(context.Background(), req); err == nil {
		t.Fatal("Run accepted a zero target")
	}
}
