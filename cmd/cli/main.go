package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"novadex/internal/httpx"
	"novadex/internal/pokedex"
	"novadex/pkg/cache"
	"novadex/pkg/models"
)

const defaultBaseURL = "http://localhost:4000"

var title = cases.Title(language.English)

func main() {
	global := flag.NewFlagSet("novadex", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	asJSON := global.Bool("json", false, "print raw JSON responses")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	client := &http.Client{Timeout: 15 * time.Second}
	api := strings.TrimRight(*baseURL, "/")

	switch args[0] {
	case "lookup":
		handleLookup(ctx, client, api, *asJSON, args[1:])
	case "matchups":
		handleMatchups(ctx, client, api, *asJSON, args[1:])
	case "catalog":
		handleCatalog(ctx, client, api, *asJSON, args[1:])
	case "team":
		handleTeam(ctx, client, api, *asJSON, args[1:])
	case "cache":
		handleCache(ctx, client, api)
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleLookup(ctx context.Context, client *http.Client, baseURL string, asJSON bool, args []string) {
	if len(args) != 1 {
		log.Fatal("usage: novadex lookup <name>")
	}
	var resp pokedex.LookupResult
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/api/pokemon/"+url.PathEscape(args[0]), nil, &resp); err != nil {
		log.Fatalf("lookup failed: %v", err)
	}
	if asJSON {
		printJSON(resp)
		return
	}

	c := resp.Data
	fmt.Printf("#%03d %s (%s)\n", c.ID, label(c.Name), strings.Join(labels(c.Types), "/"))
	if c.Genus != nil {
		fmt.Printf("  %s\n", *c.Genus)
	}
	if c.FlavorText != nil {
		fmt.Printf("  %q\n", *c.FlavorText)
	}
	fmt.Printf("  height %.1fm  weight %.1fkg\n", c.Height, c.Weight)
	for _, s := range c.Stats {
		fmt.Printf("  %-16s %3d\n", label(s.Label), s.Base)
	}
	fmt.Printf("  %-16s %3d\n", "Total", c.BaseTotal())
	fmt.Printf("  source: %s\n", resp.Source)
}

func handleMatchups(ctx context.Context, client *http.Client, baseURL string, asJSON bool, args []string) {
	fs := flag.NewFlagSet("matchups", flag.ExitOnError)
	opponent := fs.String("vs", "", "opponent name")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		log.Fatal("usage: novadex matchups [-vs opponent] <name>")
	}

	u, err := url.Parse(baseURL + "/api/pokemon/" + url.PathEscape(fs.Arg(0)) + "/matchups")
	if err != nil {
		log.Fatalf("invalid base url: %v", err)
	}
	if *opponent != "" {
		q := u.Query()
		q.Set("opponent", *opponent)
		u.RawQuery = q.Encode()
	}

	var resp pokedex.MatchupResult
	if err := doJSON(ctx, client, http.MethodGet, u.String(), nil, &resp); err != nil {
		log.Fatalf("matchups failed: %v", err)
	}
	if asJSON {
		printJSON(resp)
		return
	}

	r := resp.Data
	fmt.Printf("%s\n", label(resp.Meta.Subject))
	printBucket("weak to", multiplierLabels(r.Defense.VulnerableTo))
	printBucket("resists", multiplierLabels(r.Defense.ResistantTo))
	printBucket("immune to", multiplierLabels(r.Defense.ImmuneTo))
	printBucket("best counters", labels(r.Summary.BestCounters))
	if r.Versus != nil && resp.Meta.Opponent != nil {
		fmt.Printf("vs %s (%s): %s\n", label(resp.Meta.Opponent.Name),
			strings.Join(labels(r.Versus.OpponentTypes), "/"), r.Versus.Verdict)
		fmt.Printf("  offense x%g  defense x%g\n", r.Versus.Offense.Multiplier, r.Versus.Defense.Multiplier)
	}
}

func handleCatalog(ctx context.Context, client *http.Client, baseURL string, asJSON bool, args []string) {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	prefix := fs.String("prefix", "", "only names starting with prefix")
	_ = fs.Parse(args)

	var resp pokedex.CatalogResult
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/api/pokemon/catalog", nil, &resp); err != nil {
		log.Fatalf("catalog failed: %v", err)
	}
	names := resp.Data
	if *prefix != "" {
		filtered := names[:0]
		for _, n := range names {
			if strings.HasPrefix(n, strings.ToLower(*prefix)) {
				filtered = append(filtered, n)
			}
		}
		names = filtered
	}
	if asJSON {
		printJSON(names)
		return
	}
	for _, n := range names {
		fmt.Println(n)
	}
	fmt.Printf("(%d names)\n", len(names))
}

func handleTeam(ctx context.Context, client *http.Client, baseURL string, asJSON bool, args []string) {
	if len(args) == 0 {
		log.Fatal("usage: novadex team <name> [name...]")
	}
	payload := map[string][]string{"names": args}
	var resp pokedex.TeamResult
	if err := doJSON(ctx, client, http.MethodPost, baseURL+"/api/team/metrics", payload, &resp); err != nil {
		log.Fatalf("team failed: %v", err)
	}
	if asJSON {
		printJSON(resp)
		return
	}

	m := resp.Data
	fmt.Printf("team of %d: %s\n", m.Size, strings.Join(labels(m.Members), ", "))
	fmt.Printf("  types %s\n", strings.Join(labels(m.UniqueTypes), ", "))
	fmt.Printf("  coverage %s  average base total %d\n", percent(m.CoveragePercent), m.AverageBaseTotal)
	for _, w := range m.GlaringWeaknesses {
		fmt.Printf("  weak to %s (%d members)\n", label(w.Type), w.Affected)
	}
	for _, r := range m.SturdyResistances {
		fmt.Printf("  resists %s (%d members)\n", label(r.Type), r.Protectors)
	}
}

func handleCache(ctx context.Context, client *http.Client, baseURL string) {
	var stats cache.Stats
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/debug/cache", nil, &stats); err != nil {
		log.Fatalf("cache stats failed: %v", err)
	}
	printJSON(stats)
}

func doJSON(ctx context.Context, client *http.Client, method, endpoint string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		var env httpx.ErrorEnvelope
		if json.Unmarshal(data, &env) == nil && env.Error.Message != "" {
			return errors.New(env.Error.Message)
		}
		return fmt.Errorf("%s %s failed: %s", method, endpoint, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func printBucket(name string, items []string) {
	if len(items) == 0 {
		items = []string{"-"}
	}
	fmt.Printf("  %-14s %s\n", name+":", strings.Join(items, ", "))
}

// percent renders a 0..1 fraction as a whole percentage.
func percent(fraction float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(fraction*100)))
}

// label turns "special-attack" into "Special Attack".
func label(s string) string {
	return title.String(strings.ReplaceAll(s, "-", " "))
}

func labels(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = label(s)
	}
	return out
}

func multiplierLabels(in []models.TypeMultiplier) []string {
	out := make([]string, len(in))
	for i, m := range in {
		out[i] = fmt.Sprintf("%s x%g", label(m.Type), m.Multiplier)
	}
	return out
}

func printUsage() {
	fmt.Println("novadex [-api url] [-json] <command> [flags]")
	fmt.Println("commands:")
	fmt.Println("  lookup <name>")
	fmt.Println("  matchups [-vs opponent] <name>")
	fmt.Println("  catalog [-prefix p]")
	fmt.Println("  team <name> [name...]")
	fmt.Println("  cache")
}
