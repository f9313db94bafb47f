package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mcoot/feastgame/internal/api/response"
	"github.com/mcoot/feastgame/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to stdout
func NewOutput(format string) *Output {
	return &Output{format: format, w: os.Stdout}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	case response.SessionList:
		o.printSessionList(v)
	case response.Session:
		o.printSession(v)
	case response.Surface:
		o.printSurface(v)
	case []model.Shape:
		o.printShapes(v)
	case []model.Action:
		o.printActions(v)
	case []response.Island:
		o.printIslands(v)
	case response.ActionResponse:
		o.printActionResponse(v)
	case response.RiskRolledResponse:
		fmt.Fprintf(o.w, "Rolled %d on a d%d for %s\n", v.Risk.Roll, v.Risk.DieSize, v.Risk.ActionID)
	case response.RiskResolvedResponse:
		o.printRiskResolved(v)
	case response.PlacementCheckResponse:
		o.printPlacementCheck(v)
	case response.PlacementResponse:
		o.printPlacement(v)
	case response.Suggestion:
		fmt.Fprintf(o.w, "Try x=%d y=%d rotation %d (removes %d penalty, %s)\n", v.X, v.Y, v.Rotation, v.Relief, v.Strategy)
	case response.FeastEntryResponse:
		o.printFeastEntry(v)
	case response.HarvestResponse:
		fmt.Fprintf(o.w, "Harvested %s (%s)\n", v.Tile.Shape.Name, v.Tile.ID)
	case response.FeastFinishedResponse:
		o.printFeastFinished(v)
	case model.ScoreCard:
		o.printScore(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printSessionList(l response.SessionList) {
	if len(l.Sessions) == 0 {
		fmt.Fprintln(o.w, "No sessions")
		return
	}
	for _, id := range l.Sessions {
		fmt.Fprintln(o.w, id)
	}
}

func (o *Output) printSession(s response.Session) {
	fmt.Fprintf(o.w, "Session: %s\n", s.ID)
	if s.Phase == string(model.PhaseGameOver) {
		fmt.Fprintf(o.w, "Game over after %d rounds\n", s.TotalRounds)
	} else {
		fmt.Fprintf(o.w, "Round: %s of %d (%s), %s phase\n", humanize.Ordinal(s.Round), s.TotalRounds, s.ActiveColor, s.Phase)
	}
	fmt.Fprintf(o.w, "Vikings: %d of %d available\n", s.VikingsFree, s.VikingsTotal)
	fmt.Fprintf(o.w, "Resources: %s\n", formatResources(s.Resources))
	if s.FeastPenalty != 0 {
		fmt.Fprintf(o.w, "Feast penalties: %s\n", humanize.Comma(int64(s.FeastPenalty)))
	}

	fmt.Fprintf(o.w, "Inventory (%d):\n", len(s.Inventory))
	for _, t := range s.Inventory {
		fmt.Fprintf(o.w, "  - %s %s [%s %dx%d]\n", t.ID, t.Shape.Name, t.Shape.Color, t.Shape.Width, t.Shape.Height)
	}

	if s.Risk != nil {
		if s.Risk.Roll > 0 {
			fmt.Fprintf(o.w, "Pending %s for %s: rolled %d on a d%d\n", s.Risk.Kind, s.Risk.ActionID, s.Risk.Roll, s.Risk.DieSize)
		} else {
			fmt.Fprintf(o.w, "Pending %s for %s: roll a d%d\n", s.Risk.Kind, s.Risk.ActionID, s.Risk.DieSize)
		}
	}

	if s.Feast != nil {
		o.printFeast(*s.Feast)
	}

	for _, surface := range s.Surfaces {
		fmt.Fprintln(o.w)
		if surface.ID == s.ActiveSurface {
			fmt.Fprint(o.w, "* ")
		}
		o.printSurface(surface)
	}
}

func (o *Output) printFeast(f response.Feast) {
	fmt.Fprintf(o.w, "Feast table: %d of %d filled\n", f.Filled, f.RequiredSize)
	row := make([]string, 0, len(f.Entries))
	for _, e := range f.Entries {
		row = append(row, fmt.Sprintf("%s(%d)", e.ShapeID, e.Width))
	}
	if len(row) > 0 {
		fmt.Fprintf(o.w, "  %s\n", strings.Join(row, " | "))
	}
}

// printSurface draws the board as ASCII: '#' covered, '.' penalty,
// '$' income, a letter for a resource bonus
func (o *Output) printSurface(s response.Surface) {
	fmt.Fprintf(o.w, "%s (%s) score %s\n", s.Name, s.ID, humanize.Comma(int64(s.Score)))

	// Column headers
	fmt.Fprint(o.w, "    ")
	for x := 0; x < s.Width; x++ {
		fmt.Fprintf(o.w, "%2d", x%100)
	}
	fmt.Fprintln(o.w)

	border := "   +" + strings.Repeat("--", s.Width) + "-+"
	fmt.Fprintln(o.w, border)
	for y, row := range s.Cells {
		fmt.Fprintf(o.w, "%2d |", y)
		for _, cell := range row {
			fmt.Fprintf(o.w, " %c", cellGlyph(cell))
		}
		fmt.Fprintln(o.w, " |")
	}
	fmt.Fprintln(o.w, border)
}

var bonusGlyphs = map[string]rune{
	string(model.ResourceMead):   'M',
	string(model.ResourceRune):   'R',
	string(model.ResourceSilver): 'S',
	string(model.ResourceStone):  'T',
	string(model.ResourceOre):    'O',
	string(model.ResourceWool):   'W',
	string(model.ResourcePelt):   'P',
	"income":                     '$',
}

func cellGlyph(c response.Cell) rune {
	switch {
	case c.Covered:
		return '#'
	case c.Bonus != "":
		if g, ok := bonusGlyphs[c.Bonus]; ok {
			return g
		}
		return []rune(strings.ToUpper(c.Bonus))[0]
	case c.Penalty != 0:
		return '.'
	}
	return ' '
}

func formatResources(rs model.Resources) string {
	parts := []string{}
	for _, r := range model.AllResources {
		if n := rs.Get(r); n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", r, n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func (o *Output) printShapes(shapes []model.Shape) {
	for _, s := range shapes {
		fmt.Fprintf(o.w, "%-14s %-14s %-9s %dx%d  %s\n", s.ID, s.Name, s.Color, s.Width, s.Height, s.Matrix)
	}
}

func (o *Output) printActions(actions []model.Action) {
	for _, a := range actions {
		fmt.Fprintf(o.w, "%-20s %d viking(s)  %s: %s\n", a.ID, a.VikingCost, a.Name, a.Description)
	}
}

func (o *Output) printIslands(islands []response.Island) {
	for _, i := range islands {
		fmt.Fprintf(o.w, "%-8s %s, %dx%d, %d VP, %d bonuses\n", i.ID, i.Name, i.Width, i.Height, i.VP, len(i.Bonuses))
	}
}

func (o *Output) printActionResponse(r response.ActionResponse) {
	fmt.Fprintf(o.w, "Took %s\n", r.Outcome.ActionID)
	if len(r.Outcome.Paid) > 0 {
		fmt.Fprintf(o.w, "Paid: %s\n", formatResources(r.Outcome.Paid))
	}
	if len(r.Outcome.Gained) > 0 {
		fmt.Fprintf(o.w, "Gained: %s\n", formatResources(r.Outcome.Gained))
	}
	for _, t := range r.Outcome.Tiles {
		fmt.Fprintf(o.w, "New tile: %s %s\n", t.ID, t.Shape.Name)
	}
	if r.Outcome.Unlocked != "" {
		fmt.Fprintf(o.w, "Explored %s\n", r.Outcome.Unlocked)
	}
	if p := r.Outcome.Pending; p != nil {
		fmt.Fprintf(o.w, "This is a %s: roll a d%d with 'feast risk roll'\n", p.Kind, p.DieSize)
	}
	fmt.Fprintf(o.w, "Vikings left: %d\n", r.Session.VikingsFree)
}

func (o *Output) printRiskResolved(r response.RiskResolvedResponse) {
	result := "failed"
	if r.Outcome.Success {
		result = "succeeded"
	}
	fmt.Fprintf(o.w, "%s %s: roll %d against strength %d\n", r.Outcome.ActionID, result, r.Outcome.Roll, r.Outcome.Strength)
	for _, t := range r.Outcome.Tiles {
		fmt.Fprintf(o.w, "New tile: %s %s\n", t.ID, t.Shape.Name)
	}
	if len(r.Outcome.Consolation) > 0 {
		fmt.Fprintf(o.w, "Consolation: %s\n", formatResources(r.Outcome.Consolation))
	}
}

func (o *Output) printPlacementCheck(r response.PlacementCheckResponse) {
	if r.Valid {
		fmt.Fprintf(o.w, "Fits: %s\n", r.Matrix)
		return
	}
	fmt.Fprintf(o.w, "Does not fit: %s\n", r.Reason)
}

func (o *Output) printPlacement(r response.PlacementResponse) {
	fmt.Fprintf(o.w, "Placed %s at (%d, %d)\n", r.Tile.ShapeID, r.Tile.X, r.Tile.Y)
	for _, surface := range r.Session.Surfaces {
		if surface.ID == r.Session.ActiveSurface {
			o.printSurface(surface)
		}
	}
}

func (o *Output) printFeastEntry(r response.FeastEntryResponse) {
	fmt.Fprintf(o.w, "%s (%d)\n", r.Entry.ShapeID, r.Entry.Width)
	if r.Session.Feast != nil {
		o.printFeast(*r.Session.Feast)
	}
}

func (o *Output) printFeastFinished(r response.FeastFinishedResponse) {
	out := r.Outcome
	fmt.Fprintf(o.w, "Feast of the %s round: %d of %d filled, penalty %d\n", humanize.Ordinal(out.Round), out.Filled, out.Required, out.Penalty)
	if len(out.Yield.Bonuses) > 0 {
		bonuses := make([]string, len(out.Yield.Bonuses))
		for i, b := range out.Yield.Bonuses {
			bonuses[i] = string(b)
		}
		fmt.Fprintf(o.w, "Bonuses: %s\n", strings.Join(bonuses, ", "))
	}
	if out.Yield.Income > 0 {
		fmt.Fprintf(o.w, "Income: %d silver\n", out.Yield.Income)
	}
	for _, bred := range out.Bred {
		fmt.Fprintf(o.w, "Bred a %s\n", bred)
	}
	if out.GameOver {
		fmt.Fprintln(o.w, "Game over! Check 'feast score'")
		return
	}
	fmt.Fprintf(o.w, "The %s round begins\n", humanize.Ordinal(out.NextRound))
}

func (o *Output) printScore(c model.ScoreCard) {
	for _, s := range c.Surfaces {
		fmt.Fprintf(o.w, "  %-10s %s\n", s.Surface, humanize.Comma(int64(s.Score)))
	}
	if c.IslandVP != 0 {
		fmt.Fprintf(o.w, "  %-10s %s\n", "islands", humanize.Comma(int64(c.IslandVP)))
	}
	fmt.Fprintf(o.w, "  %-10s %s\n", "feasts", humanize.Comma(int64(c.FeastPenalty)))
	label := "Score"
	if c.Final {
		label = "Final score"
	}
	fmt.Fprintf(o.w, "%s: %s\n", label, humanize.Comma(int64(c.Total)))
}
