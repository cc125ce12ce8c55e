package season

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"agroclimate/entities"
)

type baselineRow struct {
	RainProbability float64
	Conditions      string
	Confidence      string
}

type staticProvider struct {
	table map[string]map[string]baselineRow // region -> season -> row
}

// NewStatic returns a Provider backed by the built-in region/season
// table, optionally overridden from a CSV and/or XLSX file. Loader
// failures on override files are non-fatal: the built-in table stays.
func NewStatic(overrideCSV, overrideXLSX string) Provider {
	p := &staticProvider{table: defaultTable()}
	if overrideCSV != "" {
		if err := p.loadCSV(overrideCSV); err != nil {
			log.Printf("[season] csv override skipped: %v", err)
		}
	}
	if overrideXLSX != "" {
		if err := p.loadXLSX(overrideXLSX); err != nil {
			log.Printf("[season] xlsx override skipped: %v", err)
		}
	}
	return p
}

func defaultTable() map[string]map[string]baselineRow {
	return map[string]map[string]baselineRow{
		RegionHighland: {
			LongRains:  {0.75, "wet", "high"},
			ShortRains: {0.55, "moderate", "high"},
			DryCool:    {0.25, "dry", "medium"},
			DryHot:     {0.15, "dry", "medium"},
		},
		RegionLakeBasin: {
			LongRains:  {0.70, "wet", "high"},
			ShortRains: {0.60, "wet", "medium"},
			DryCool:    {0.35, "moderate", "medium"},
			DryHot:     {0.30, "moderate", "medium"},
		},
		RegionSemiArid: {
			LongRains:  {0.45, "moderate", "medium"},
			ShortRains: {0.40, "moderate", "medium"},
			DryCool:    {0.10, "dry", "high"},
			DryHot:     {0.08, "dry", "high"},
		},
		RegionCoastal: {
			LongRains:  {0.65, "wet", "medium"},
			ShortRains: {0.45, "moderate", "medium"},
			DryCool:    {0.30, "moderate", "low"},
			DryHot:     {0.20, "dry", "medium"},
		},
		RegionDefault: {
			LongRains:  {0.60, "moderate", "low"},
			ShortRains: {0.45, "moderate", "low"},
			DryCool:    {0.25, "dry", "low"},
			DryHot:     {0.20, "dry", "low"},
		},
	}
}

func (p *staticProvider) Baseline(ctx context.Context, loc entities.Location, period entities.DateRange) (entities.SeasonalBaseline, error) {
	select {
	case <-ctx.Done():
		return entities.SeasonalBaseline{}, ctx.Err()
	default:
	}

	region := RegionOf(loc)
	// Season of the period midpoint, so a window straddling a season
	// boundary lands on its dominant season.
	mid := period.Start.Add(period.End.Sub(period.Start) / 2)
	season := SeasonOf(mid)

	seasons, ok := p.table[region]
	if !ok {
		seasons = p.table[RegionDefault]
	}
	row, ok := seasons[season]
	if !ok {
		return entities.SeasonalBaseline{}, fmt.Errorf("no baseline for %s/%s", region, season)
	}
	return entities.SeasonalBaseline{
		Region:          region,
		Season:          season,
		RainProbability: row.RainProbability,
		Conditions:      row.Conditions,
		Confidence:      row.Confidence,
	}, nil
}

// loadCSV merges rows from a CSV with columns Region, Season,
// RainProbability, Conditions, Confidence. Header names are matched
// loosely so exported spreadsheets load without cleanup.
func (p *staticProvider) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cRegion := findAny("Region", "zone")
	cSeason := findAny("Season", "period")
	cProb := findAny("RainProbability", "rain_prob", "rainprob", "probability")
	cCond := findAny("Conditions", "condition", "outlook")
	cConf := findAny("Confidence", "conf")

	if cRegion == -1 || cSeason == -1 || cProb == -1 {
		return fmt.Errorf("baseline csv missing required columns, headers: %v", head)
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		prob, err := strconv.ParseFloat(get(cProb), 64)
		if err != nil || prob < 0 || prob > 1 {
			continue // skip invalid rows
		}
		region, seasonName := get(cRegion), get(cSeason)
		if region == "" || seasonName == "" {
			continue
		}
		row := baselineRow{RainProbability: prob, Conditions: get(cCond), Confidence: get(cConf)}
		if row.Conditions == "" {
			row.Conditions = conditionsFor(prob)
		}
		if row.Confidence == "" {
			row.Confidence = "medium"
		}
		if p.table[region] == nil {
			p.table[region] = map[string]baselineRow{}
		}
		p.table[region][seasonName] = row
	}
	return nil
}

// loadXLSX merges rows from the first sheet, same columns as the CSV.
func (p *staticProvider) loadXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return errors.New("xlsx has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return nil
	}
	for _, rec := range rows[1:] {
		if len(rec) < 3 {
			continue
		}
		prob, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err != nil || prob < 0 || prob > 1 {
			continue
		}
		region := strings.TrimSpace(rec[0])
		seasonName := strings.TrimSpace(rec[1])
		if region == "" || seasonName == "" {
			continue
		}
		row := baselineRow{RainProbability: prob, Conditions: conditionsFor(prob), Confidence: "medium"}
		if len(rec) > 3 && strings.TrimSpace(rec[3]) != "" {
			row.Conditions = strings.TrimSpace(rec[3])
		}
		if len(rec) > 4 && strings.TrimSpace(rec[4]) != "" {
			row.Confidence = strings.TrimSpace(rec[4])
		}
		if p.table[region] == nil {
			p.table[region] = map[string]baselineRow{}
		}
		p.table[region][seasonName] = row
	}
	return nil
}

func conditionsFor(prob float64) string {
	switch {
	case prob >= 0.6:
		return "wet"
	case prob >= 0.3:
		return "moderate"
	default:
		return "dry"
	}
}
