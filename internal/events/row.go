// Package events reads and writes event log files.
//
// An event file holds the events logged under one name and kind. The first
// line is a header, each following line one event:
//
//	step|timestamp|metric
//	1|2024-03-01T12:00:00Z|0.25
//	2|2024-03-01T12:00:05Z|0.125
package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/maruel/plx/models"
)

// Separator separates the columns of a row.
const Separator = "|"

// legacyTimeFormat is how older writers rendered timestamps.
const legacyTimeFormat = "2006-01-02 15:04:05.999999-07:00"

// Header returns the first line of an event file of the given kind.
func Header(kind models.ArtifactKind) string {
	return "step" + Separator + "timestamp" + Separator + string(kind)
}

// FormatRow renders e as one row. The primitive matching kind must be set.
func FormatRow(kind models.ArtifactKind, e *models.Event) (string, error) {
	value, err := formatValue(kind, e)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if e.Step != nil {
		b.WriteString(strconv.FormatInt(*e.Step, 10))
	}
	b.WriteString(Separator)
	if e.Timestamp != nil {
		b.WriteString(e.Timestamp.Format(time.RFC3339Nano))
	}
	b.WriteString(Separator)
	b.WriteString(value)
	return b.String(), nil
}

func formatValue(kind models.ArtifactKind, e *models.Event) (string, error) {
	switch kind {
	case models.ArtifactKindMetric:
		if e.Metric == nil {
			break
		}
		return strconv.FormatFloat(*e.Metric, 'g', -1, 64), nil
	case models.ArtifactKindHTML, models.ArtifactKindText:
		s := e.HTML
		if kind == models.ArtifactKindText {
			s = e.Text
		}
		if s == nil {
			break
		}
		return quote(*s)
	default:
		v := e.Value(kind)
		if v == nil {
			break
		}
		b, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to encode %s event: %w", kind, err)
		}
		return string(b), nil
	}
	return "", fmt.Errorf("event has no %s value", kind)
}

// quote renders s as a JSON string without escaping HTML characters.
func quote(s string) (string, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// ParseRow decodes one row of an event file of the given kind.
func ParseRow(kind models.ArtifactKind, line string) (*models.Event, error) {
	parts := strings.SplitN(line, Separator, 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed event row %q", line)
	}
	e := models.NewEvent()
	if parts[0] != "" {
		step, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid step: %w", err)
		}
		e.SetStep(step)
	}
	if parts[1] != "" {
		ts, err := parseTime(parts[1])
		if err != nil {
			return nil, err
		}
		e.SetTimestamp(ts)
	}
	if err := setValue(kind, e, parts[2]); err != nil {
		return nil, err
	}
	return e, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(legacyTimeFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t, nil
}

func setValue(kind models.ArtifactKind, e *models.Event, raw string) error {
	switch kind {
	case models.ArtifactKindMetric:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid metric: %w", err)
		}
		e.SetMetric(v)
		return nil
	case models.ArtifactKindHTML, models.ArtifactKindText:
		s := raw
		if strings.HasPrefix(raw, `"`) {
			if err := json.Unmarshal([]byte(raw), &s); err != nil {
				return fmt.Errorf("invalid %s: %w", kind, err)
			}
		}
		if kind == models.ArtifactKindHTML {
			e.SetHTML(s)
		} else {
			e.SetText(s)
		}
		return nil
	}
	var err error
	data := []byte(raw)
	switch kind {
	case models.ArtifactKindImage:
		e.Image = models.NewEventImage()
		err = json.Unmarshal(data, e.Image)
	case models.ArtifactKindHistogram:
		e.Histogram = models.NewEventHistogram()
		err = json.Unmarshal(data, e.Histogram)
	case models.ArtifactKindAudio:
		e.Audio = models.NewEventAudio()
		err = json.Unmarshal(data, e.Audio)
	case models.ArtifactKindVideo:
		e.Video = models.NewEventVideo()
		err = json.Unmarshal(data, e.Video)
	case models.ArtifactKindChart:
		e.Chart = models.NewEventChart()
		err = json.Unmarshal(data, e.Chart)
	case models.ArtifactKindCurve:
		e.Curve = models.NewEventCurve()
		err = json.Unmarshal(data, e.Curve)
	case models.ArtifactKindConfusion:
		e.Confusion = models.NewEventConfusionMatrix()
		err = json.Unmarshal(data, e.Confusion)
	case models.ArtifactKindArtifact:
		e.Artifact = models.NewEventArtifact()
		err = json.Unmarshal(data, e.Artifact)
	case models.ArtifactKindModel:
		e.Model = models.NewEventModel()
		err = json.Unmarshal(data, e.Model)
	case models.ArtifactKindDataframe:
		e.Dataframe = models.NewEventDataframe()
		err = json.Unmarshal(data, e.Dataframe)
	default:
		return &models.EnumError{Enum: "event kind", Value: string(kind)}
	}
	return err
}

// ErrNotEvent is returned for artifact kinds that are not stored as events.
var ErrNotEvent = errors.New("kind is not an event kind")

// CheckKind returns ErrNotEvent unless events of kind can be stored.
func CheckKind(kind models.ArtifactKind) error {
	if !slices.Contains(models.EventKinds(), kind) {
		return fmt.Errorf("%w: %q", ErrNotEvent, kind)
	}
	return nil
}
