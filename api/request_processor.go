package api

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/saeidalz13/battleship-hotseat/db/sqlc"
	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

const (
	promptCommand = "attack    personal_board    opponent_board    quit: "
	promptAttack  = "Enter attack location (row col): "
	promptRematch = "rematch (yes/no): "
)

var errInputClosed = errors.New("input closed")

// RequestProcessor is the hot-seat match controller. It reads player
// intent line by line, hands it to the core and writes back the result.
type RequestProcessor struct {
	gameManager    mb.GameManager
	analytics      *sqlc.AnalyticsManager
	logger         zerolog.Logger
	in             *bufio.Scanner
	out            io.Writer
	rand           *rand.Rand
	extraTurnOnHit bool
}

type Option func(*RequestProcessor) error

func NewRequestProcessor(gameManager mb.GameManager, optFuncs ...Option) (*RequestProcessor, error) {
	rp := RequestProcessor{
		gameManager:    gameManager,
		logger:         zerolog.Nop(),
		extraTurnOnHit: true,
	}
	for _, opt := range optFuncs {
		if err := opt(&rp); err != nil {
			return nil, err
		}
	}

	if rp.in == nil {
		return nil, errors.New("request processor needs an input")
	}
	if rp.out == nil {
		rp.out = io.Discard
	}
	if rp.rand == nil {
		rp.rand = mb.NewRand(uint64(time.Now().UnixNano()))
	}

	return &rp, nil
}

func WithInput(r io.Reader) Option {
	return func(rp *RequestProcessor) error {
		if r == nil {
			return errors.New("input reader is nil")
		}
		rp.in = bufio.NewScanner(r)
		return nil
	}
}

func WithOutput(w io.Writer) Option {
	return func(rp *RequestProcessor) error {
		if w == nil {
			return errors.New("output writer is nil")
		}
		rp.out = w
		return nil
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(rp *RequestProcessor) error {
		rp.logger = logger
		return nil
	}
}

// WithAnalytics enables the match counters. A nil manager leaves them off.
func WithAnalytics(analytics *sqlc.AnalyticsManager) Option {
	return func(rp *RequestProcessor) error {
		rp.analytics = analytics
		return nil
	}
}

func WithRandSeed(seed uint64) Option {
	return func(rp *RequestProcessor) error {
		rp.rand = mb.NewRand(seed)
		return nil
	}
}

func WithExtraTurnOnHit(extraTurn bool) Option {
	return func(rp *RequestProcessor) error {
		rp.extraTurnOnHit = extraTurn
		return nil
	}
}

// Run plays matches until the players decline a rematch or the input
// ends. Cancelling ctx stops the loop at the next prompt.
func (rp *RequestProcessor) Run(ctx context.Context) error {
	for {
		match := rp.gameManager.CreateMatch(mb.WithExtraTurnOnHit(rp.extraTurnOnHit))
		rp.logger.Info().Str("match", match.Uuid()).Msg("match created")
		rp.recordMatchCreated(ctx)

		err := rp.processMatch(ctx, match)
		rp.gameManager.TerminateMatch(match.Uuid())
		if errors.Is(err, errInputClosed) {
			rp.logger.Info().Str("match", match.Uuid()).Msg("input closed; leaving match")
			return nil
		}
		if err != nil {
			return err
		}

		rp.recordMatchFinished(ctx, match)

		rematch, err := rp.askRematch(ctx)
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if !rematch {
			return nil
		}
	}
}

func (rp *RequestProcessor) processMatch(ctx context.Context, match *mb.Match) error {
	rp.printf("Match %s\n\n", match.Uuid())

	for _, player := range match.Players() {
		rp.printf("Player %d please enter the locations of your ships. The start and end points are inclusive.\n\n", player.Number())
		if err := rp.processPlacement(ctx, match, player); err != nil {
			return err
		}
	}

	if err := match.Start(); err != nil {
		return err
	}

	for !match.IsFinished() {
		attacker := match.CurrentPlayer()
		rp.printf("Player %d move.\n", attacker.Number())

		line, err := rp.readLine(ctx, promptCommand)
		if err != nil {
			return err
		}

		cmd, args := parseCommand(line)
		switch cmd {
		case CommandAttack:
			if err := rp.processAttack(ctx, match, args); err != nil {
				return err
			}

		case CommandPersonalBoard:
			rp.renderGrid(attacker.Board().RevealedView())

		case CommandOpponentBoard:
			rp.renderGrid(match.Opponent().Board().OpponentView())

		case CommandQuit:
			if err := match.Forfeit(attacker.Number()); err != nil {
				return err
			}
			rp.printf("Player %d quit.\n", attacker.Number())

		default:
			rp.printf("invalid command: %q\n\n", line)
		}
	}

	rp.printf("Game over: Player %d wins!\n\n", match.Winner().Number())
	rp.logger.Info().
		Str("match", match.Uuid()).
		Int("winner", match.Winner().Number()).
		Int("shots", match.ShotsFired()).
		Msg("match finished")
	return nil
}

func (rp *RequestProcessor) processPlacement(ctx context.Context, match *mb.Match, player *mb.Player) error {
	board := player.Board()

	for !board.IsFleetComplete() {
		kind := board.UnplacedKinds()[0]
		prompt := fmt.Sprintf("%s (length %d) start and end as 'row col row col', or %s: ",
			strings.ToUpper(kind.String()), kind.Length(), keywordAuto)

		line, err := rp.readLine(ctx, prompt)
		if err != nil {
			return err
		}

		fields := strings.Fields(strings.ToLower(line))
		if len(fields) == 1 && fields[0] == keywordAuto {
			if err := match.AutoPlace(player.Number(), rp.rand); err != nil {
				return err
			}
			rp.logger.Debug().Str("match", match.Uuid()).Int("player", player.Number()).Msg("fleet placed automatically")
		} else {
			coords, err := parseCoordinates(fields, 2)
			if err != nil {
				rp.printf("invalid input: %s\n\n", err)
				continue
			}
			if err := match.PlaceShip(player.Number(), kind, coords[0], coords[1]); err != nil {
				rp.printf("cannot place %s: %s\n\n", kind, err)
				continue
			}
			rp.logger.Debug().
				Str("match", match.Uuid()).
				Int("player", player.Number()).
				Stringer("ship", kind).
				Msg("ship placed")
		}

		rp.printf("\n")
		rp.renderGrid(board.RevealedView())
		rp.printf("\n")
	}
	return nil
}

func (rp *RequestProcessor) processAttack(ctx context.Context, match *mb.Match, args []string) error {
	if len(args) == 0 {
		line, err := rp.readLine(ctx, promptAttack)
		if err != nil {
			return err
		}
		args = strings.Fields(line)
	}

	coords, err := parseCoordinates(args, 1)
	if err != nil {
		rp.printf("invalid input: %s\n\n", err)
		return nil
	}

	attacker := match.CurrentPlayer()
	outcome, err := match.Attack(coords[0])
	if err != nil {
		rp.printf("attack rejected: %s\n\n", err)
		return nil
	}

	rp.logger.Debug().
		Str("match", match.Uuid()).
		Int("attacker", attacker.Number()).
		Int("row", coords[0].Row).
		Int("col", coords[0].Col).
		Stringer("result", outcome.Result).
		Msg("attack resolved")

	if outcome.Result == mb.AttackSunk {
		rp.printf("sunk: %s\n\n", outcome.Kind)
		return nil
	}
	rp.printf("%s\n\n", outcome.Result)
	return nil
}

func (rp *RequestProcessor) askRematch(ctx context.Context) (bool, error) {
	line, err := rp.readLine(ctx, promptRematch)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), keywordYes), nil
}

func (rp *RequestProcessor) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rp.printf("%s", prompt)
	if !rp.in.Scan() {
		if err := rp.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return rp.in.Text(), nil
}

func (rp *RequestProcessor) printf(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(rp.out, format, args...); err != nil {
		rp.logger.Error().Err(err).Msg("failed to write to output")
	}
}

func (rp *RequestProcessor) renderGrid(grid mb.Grid) {
	if err := RenderGrid(rp.out, grid); err != nil {
		rp.logger.Error().Err(err).Msg("failed to render grid")
	}
	rp.printf("\n")
}

func (rp *RequestProcessor) recordMatchCreated(ctx context.Context) {
	if rp.analytics == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()

	// for now not stopping the match for it
	if err := rp.analytics.IncrementMatchesCreatedCount(ctx); err != nil {
		rp.logger.Error().Err(err).Msg("failed to record created match")
	}
}

func (rp *RequestProcessor) recordMatchFinished(ctx context.Context, match *mb.Match) {
	if rp.analytics == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := rp.analytics.IncrementMatchesFinishedCount(ctx); err != nil {
		rp.logger.Error().Err(err).Msg("failed to record finished match")
	}
	if err := rp.analytics.IncrementShotsFiredCount(ctx, match.ShotsFired()); err != nil {
		rp.logger.Error().Err(err).Msg("failed to record shots fired")
	}
}
