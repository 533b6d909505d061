package sndbank

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

type (
	// Alias is one row of an alias table. Aliases sharing a name form one
	// sub-list the engine picks randomly from.
	Alias struct {
		Name          string `json:"name"`
		ID            uint32 `json:"id"`
		FileName      string `json:"file"`
		FileID        uint32 `json:"file_id"`
		Secondary     string `json:"secondary"`
		Subtitle      string `json:"subtitle"`
		DuckID        uint32 `json:"duck_id"`
		VolMin        uint16 `json:"vol_min"`
		VolMax        uint16 `json:"vol_max"`
		DistMin       uint16 `json:"dist_min"`
		DistMax       uint16 `json:"dist_max"`
		PitchMin      uint16 `json:"pitch_min"`
		PitchMax      uint16 `json:"pitch_max"`
		LimitCount    uint8  `json:"limit_count"`
		Probability   uint8  `json:"probability"`
		StartDelay    uint16 `json:"start_delay"`
		ReverbSend    uint16 `json:"reverb_send"`
		CenterSend    uint16 `json:"center_send"`
		EnvelopMin    uint16 `json:"envelop_min"`
		EnvelopMax    uint16 `json:"envelop_max"`
		Looping       bool   `json:"looping"`
		PanningThreeD bool   `json:"panning_3d"`
	}

	aliasRow struct {
		columns map[string]int
		record  []string
	}
)

func (r aliasRow) value(column string) string {
	index, ok := r.columns[column]
	if !ok || index >= len(r.record) {
		return ""
	}
	return r.record[index]
}

func (r aliasRow) uintValue(column string, bits int) (uint64, error) {
	raw := r.value(column)
	if raw == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, bits)
	if err != nil {
		err := errors.Wrapf(err, `column "%s"`, column)
		return 0, err
	}
	return parsed, nil
}

// ParseAliasCSV reads an alias table. The first row is the header; column
// order is free and unknown columns are ignored. A row with an empty name
// ends the table.
func ParseAliasCSV(reader io.Reader) ([]Alias, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		err := errors.Wrap(err, "ParseAliasCSV error")
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("ParseAliasCSV error: the table has no header row")
	}

	columns := map[string]int{}
	for index, column := range records[0] {
		columns[column] = index
	}

	aliases := make([]Alias, 0, len(records)-1)
	for rowNumber, record := range records[1:] {
		row := aliasRow{columns: columns, record: record}
		if row.value("name") == "" {
			break
		}

		alias, err := loadAlias(row)
		if err != nil {
			err := errors.Wrapf(err, "ParseAliasCSV error at row %d", rowNumber+2)
			return nil, err
		}
		aliases = append(aliases, *alias)
	}

	return aliases, nil
}

func loadAlias(row aliasRow) (*Alias, error) {
	name := row.value("name")
	fileName := row.value("file")
	if fileName == "" {
		return nil, errors.New(`the "file" column must not be empty`)
	}

	alias := Alias{
		Name:      name,
		ID:            HashName(name),
		FileName:      fileName,
		FileID:        HashName(fileName),
		Secondary:     row.value("secondary"),
		Subtitle:      row.value("subtitle"),
		DuckID:        HashName(row.value("duck")),
		Looping:       row.value("loop") == "looping",
		PanningThreeD: row.value("pan") == "3d",
	}

	err := error(nil)
	for _, column := range []struct {
		name string
		bits int
		set  func(value uint64)
	}{
		{"vol_min", 16, func(v uint64) { alias.VolMin = uint16(v) }},
		{"vol_max", 16, func(v uint64) { alias.VolMax = uint16(v) }},
		{"dist_min", 16, func(v uint64) { alias.DistMin = uint16(v) }},
		{"dist_max", 16, func(v uint64) { alias.DistMax = uint16(v) }},
		{"pitch_min", 16, func(v uint64) { alias.PitchMin = uint16(v) }},
		{"pitch_max", 16, func(v uint64) { alias.PitchMax = uint16(v) }},
		{"limit_count", 8, func(v uint64) { alias.LimitCount = uint8(v) }},
		{"probability", 8, func(v uint64) { alias.Probability = uint8(v) }},
		{"start_delay", 16, func(v uint64) { alias.StartDelay = uint16(v) }},
		{"reverb_send", 16, func(v uint64) { alias.ReverbSend = uint16(v) }},
		{"center_send", 16, func(v uint64) { alias.CenterSend = uint16(v) }},
		{"envelop_min", 16, func(v uint64) { alias.EnvelopMin = uint16(v) }},
		{"envelop_max", 16, func(v uint64) { alias.EnvelopMax = uint16(v) }},
	} {
		value := uint64(0)
		value, err = row.uintValue(column.name, column.bits)
		if err != nil {
			return nil, err
		}
		column.set(value)
	}

	return &alias, nil
}

// GroupAliases splits a table into its sub-lists: runs of consecutive rows
// sharing a name.
func GroupAliases(aliases []Alias) [][]Alias {
	groups := make([][]Alias, 0)
	for _, alias := range aliases {
		if len(groups) > 0 {
			last := groups[len(groups)-1]
			if last[0].Name == alias.Name {
				groups[len(groups)-1] = append(last, alias)
				continue
			}
		}
		groups = append(groups, []Alias{alias})
	}
	return groups
}

// ParseLoadedSoundsJSON reads the loaded-sound list that accompanies a
// sound bank: {"loadedSounds": ["weapons/m4_fire", ...]}.
func ParseLoadedSoundsJSON(data []byte) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("ParseLoadedSoundsJSON error: input is not valid JSON")
	}
	loaded := gjson.GetBytes(data, "loadedSounds")
	if !loaded.IsArray() {
		return nil, errors.New(`ParseLoadedSoundsJSON error: "loadedSounds" is missing or not an array`)
	}

	sounds := make([]string, 0, len(loaded.Array()))
	for _, sound := range loaded.Array() {
		sounds = append(sounds, sound.String())
	}
	return sounds, nil
}
