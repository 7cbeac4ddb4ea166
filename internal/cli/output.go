package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mcoot/nhlstats/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Player:
		o.printPlayer(v)
	case response.PlayerList:
		o.printPlayerList(v)
	case response.Gametime:
		o.printGametime(v)
	case response.Stats:
		o.printStats(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// HealthResult is the health endpoint response
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p response.Player) {
	_, _ = fmt.Fprintf(o.w, "%s (#%d, %s)\n", p.Name, p.Number, p.Position)
	_, _ = fmt.Fprintf(o.w, "ID:       %d\n", p.ID)
	_, _ = fmt.Fprintf(o.w, "Height:   %s\n", formatHeight(p))
	_, _ = fmt.Fprintf(o.w, "Weight:   %d lbs\n", p.Weight)
	_, _ = fmt.Fprintf(o.w, "Shoots:   %s\n", p.ShootsCatches)
	_, _ = fmt.Fprintf(o.w, "Born:     %s in %s, %s\n", p.BirthDate, p.BirthCity, p.BirthCountry)
	_, _ = fmt.Fprintf(o.w, "Age:      %d\n", p.Age)
}

func (o *Output) printPlayerList(l response.PlayerList) {
	if len(l.Players) == 0 {
		_, _ = fmt.Fprintln(o.w, "No players")
		return
	}

	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tNO\tPOS\tHT\tAGE")
	for _, p := range l.Players {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%d\n", p.ID, p.Name, p.Number, p.Position, formatHeight(p), p.Age)
	}
	_ = tw.Flush()
}

func (o *Output) printGametime(g response.Gametime) {
	_, _ = fmt.Fprintf(o.w, "%s %s (elapsed %s, %ds)\n", g.PeriodClock, g.PeriodLabel, g.ElapsedClock, g.Elapsed)
}

func (o *Output) printStats(s response.Stats) {
	_, _ = fmt.Fprintf(o.w, "Cached players:   %d\n", s.CachedPlayers)
	_, _ = fmt.Fprintf(o.w, "Stored records:   %d\n", s.StoredRecords)
	_, _ = fmt.Fprintf(o.w, "Cached gametimes: %d\n", s.CachedGametimes)
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}

func formatHeight(p response.Player) string {
	if p.HeightFt == nil || p.HeightIn == nil {
		return "-"
	}
	return fmt.Sprintf(`%d' %d"`, *p.HeightFt, *p.HeightIn)
}
