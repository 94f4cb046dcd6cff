package logging

import (
	"go.uber.org/zap"
)

// Warning type constants
const (
	// Parser warnings
	WarningNodeMissingAttrs = "node_missing_attributes"
	WarningLinkMissingAttrs = "link_missing_attributes"
	WarningTripMissingAttrs = "trip_missing_attributes"
	WarningInvalidLinksAttr = "invalid_links_attribute"

	// Actor builder warnings
	WarningInvalidLength    = "invalid_length"
	WarningInvalidFreespeed = "invalid_freespeed"
	WarningInvalidCapacity  = "invalid_capacity"
	WarningInvalidPermlanes = "invalid_permlanes"
	WarningInvalidStartTime = "invalid_start_time"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects warnings during conversion and outputs
// consolidated summaries instead of one log line per record.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Counts returns the number of occurrences per warning type, for the run
// summary. Nil when nothing was recorded.
func (w *WarningAggregator) Counts() map[string]int {
	if len(w.warnings) == 0 {
		return nil
	}
	counts := make(map[string]int, len(w.warnings))
	for warningType, info := range w.warnings {
		counts[warningType] = info.count
	}
	return counts
}

// LogAll outputs all collected warnings in consolidated form.
func (w *WarningAggregator) LogAll(log *zap.Logger) {
	for warningType, info := range w.warnings {
		description, action := describeWarning(warningType)
		log.Warn(description,
			zap.Int("occurrences", info.count),
			zap.String("action", action),
			zap.Strings("examples", info.examples),
		)
	}
}

// describeWarning maps a warning type to a human-readable description and
// the fallback the converter applied.
func describeWarning(warningType string) (description, action string) {
	switch warningType {
	case WarningNodeMissingAttrs:
		return "nodes missing id, x or y", "Skipped these records"
	case WarningLinkMissingAttrs:
		return "links missing required attributes", "Skipped these records"
	case WarningTripMissingAttrs:
		return "trips missing required attributes", "Skipped these records"
	case WarningInvalidLinksAttr:
		return "non-numeric global attributes on the <links> element", "Used 0.0"
	case WarningInvalidLength:
		return "links with non-numeric length", "Used 0.0"
	case WarningInvalidFreespeed:
		return "links with non-numeric freespeed", "Used 0.0"
	case WarningInvalidCapacity:
		return "links with non-numeric capacity", "Used 0.0"
	case WarningInvalidPermlanes:
		return "links with non-numeric permlanes", "Used 1.0"
	case WarningInvalidStartTime:
		return "trips with a non-numeric start time", "Used tick 0"
	default:
		return "records with an unknown issue", "Used fallback values"
	}
}
