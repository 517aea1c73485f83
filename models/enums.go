package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// EnumError reports a token outside an enum's closed vocabulary.
type EnumError struct {
	Enum  string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Enum, e.Value)
}

func marshalEnum[T ~string](name string, v T, values []T) ([]byte, error) {
	if !slices.Contains(values, v) {
		return nil, &EnumError{Enum: name, Value: string(v)}
	}
	return json.Marshal(string(v))
}

func unmarshalEnum[T ~string](name string, data []byte, values []T) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if !slices.Contains(values, T(s)) {
		return "", &EnumError{Enum: name, Value: s}
	}
	return T(s), nil
}

// EventCurveKind is the kind of a curve event. The zero value is the
// unspecified variant; it is not a wire token.
type EventCurveKind string

// Curve kinds.
const (
	EventCurveKindUnspecified EventCurveKind = ""
	EventCurveKindRoc         EventCurveKind = "roc"
	EventCurveKindPr          EventCurveKind = "pr"
	EventCurveKindCustom      EventCurveKind = "custom"
)

// DefaultEventCurveKind is the schema default.
const DefaultEventCurveKind = EventCurveKindRoc

var eventCurveKinds = []EventCurveKind{EventCurveKindRoc, EventCurveKindPr, EventCurveKindCustom}

// EventCurveKindValues returns the wire vocabulary.
func EventCurveKindValues() []EventCurveKind { return slices.Clone(eventCurveKinds) }

// IsValid reports whether k is a wire token.
func (k EventCurveKind) IsValid() bool { return slices.Contains(eventCurveKinds, k) }

// MarshalJSON implements json.Marshaler.
func (k EventCurveKind) MarshalJSON() ([]byte, error) {
	return marshalEnum("EventCurveKind", k, eventCurveKinds)
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *EventCurveKind) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("EventCurveKind", data, eventCurveKinds)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// EventChartKind is the plotting library a chart figure targets.
type EventChartKind string

// Chart kinds.
const (
	EventChartKindUnspecified EventChartKind = ""
	EventChartKindPlotly      EventChartKind = "plotly"
	EventChartKindBokeh       EventChartKind = "bokeh"
	EventChartKindVega        EventChartKind = "vega"
)

var eventChartKinds = []EventChartKind{EventChartKindPlotly, EventChartKindBokeh, EventChartKindVega}

// EventChartKindValues returns the wire vocabulary.
func EventChartKindValues() []EventChartKind { return slices.Clone(eventChartKinds) }

// IsValid reports whether k is a wire token.
func (k EventChartKind) IsValid() bool { return slices.Contains(eventChartKinds, k) }

// MarshalJSON implements json.Marshaler.
func (k EventChartKind) MarshalJSON() ([]byte, error) {
	return marshalEnum("EventChartKind", k, eventChartKinds)
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *EventChartKind) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("EventChartKind", data, eventChartKinds)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ArtifactKind classifies logged artifacts and event primitives.
type ArtifactKind string

// Artifact kinds.
const (
	ArtifactKindUnspecified ArtifactKind = ""
	ArtifactKindModel       ArtifactKind = "model"
	ArtifactKindAudio       ArtifactKind = "audio"
	ArtifactKindVideo       ArtifactKind = "video"
	ArtifactKindHistogram   ArtifactKind = "histogram"
	ArtifactKindImage       ArtifactKind = "image"
	ArtifactKindTensor      ArtifactKind = "tensor"
	ArtifactKindDataframe   ArtifactKind = "dataframe"
	ArtifactKindChart       ArtifactKind = "chart"
	ArtifactKindCSV         ArtifactKind = "csv"
	ArtifactKindTSV         ArtifactKind = "tsv"
	ArtifactKindPSV         ArtifactKind = "psv"
	ArtifactKindSSV         ArtifactKind = "ssv"
	ArtifactKindMetric      ArtifactKind = "metric"
	ArtifactKindEnv         ArtifactKind = "env"
	ArtifactKindHTML        ArtifactKind = "html"
	ArtifactKindText        ArtifactKind = "text"
	ArtifactKindFile        ArtifactKind = "file"
	ArtifactKindDir         ArtifactKind = "dir"
	ArtifactKindDockerfile  ArtifactKind = "dockerfile"
	ArtifactKindDockerImage ArtifactKind = "docker_image"
	ArtifactKindData        ArtifactKind = "data"
	ArtifactKindCoderef     ArtifactKind = "coderef"
	ArtifactKindTable       ArtifactKind = "table"
	ArtifactKindTensorboard ArtifactKind = "tensorboard"
	ArtifactKindCurve       ArtifactKind = "curve"
	ArtifactKindConfusion   ArtifactKind = "confusion"
	ArtifactKindAnalysis    ArtifactKind = "analysis"
	ArtifactKindIteration   ArtifactKind = "iteration"
	ArtifactKindMarkdown    ArtifactKind = "markdown"
	ArtifactKindSystem      ArtifactKind = "system"
	ArtifactKindArtifact    ArtifactKind = "artifact"
)

var artifactKinds = []ArtifactKind{
	ArtifactKindModel, ArtifactKindAudio, ArtifactKindVideo, ArtifactKindHistogram,
	ArtifactKindImage, ArtifactKindTensor, ArtifactKindDataframe, ArtifactKindChart,
	ArtifactKindCSV, ArtifactKindTSV, ArtifactKindPSV, ArtifactKindSSV,
	ArtifactKindMetric, ArtifactKindEnv, ArtifactKindHTML, ArtifactKindText,
	ArtifactKindFile, ArtifactKindDir, ArtifactKindDockerfile, ArtifactKindDockerImage,
	ArtifactKindData, ArtifactKindCoderef, ArtifactKindTable, ArtifactKindTensorboard,
	ArtifactKindCurve, ArtifactKindConfusion, ArtifactKindAnalysis, ArtifactKindIteration,
	ArtifactKindMarkdown, ArtifactKindSystem, ArtifactKindArtifact,
}

// ArtifactKindValues returns the wire vocabulary.
func ArtifactKindValues() []ArtifactKind { return slices.Clone(artifactKinds) }

// IsValid reports whether k is a wire token.
func (k ArtifactKind) IsValid() bool { return slices.Contains(artifactKinds, k) }

// IsSingleFileEvent reports whether all events of this kind and name are
// stored in one file.
func (k ArtifactKind) IsSingleFileEvent() bool {
	switch k {
	case ArtifactKindHTML, ArtifactKindText, ArtifactKindHistogram, ArtifactKindChart,
		ArtifactKindConfusion, ArtifactKindCurve, ArtifactKindMetric, ArtifactKindSystem:
		return true
	default:
		return false
	}
}

// IsSingleOrMultiFileEvent reports whether events of this kind reference
// asset files next to the event file.
func (k ArtifactKind) IsSingleOrMultiFileEvent() bool {
	switch k {
	case ArtifactKindModel, ArtifactKindDataframe, ArtifactKindAudio, ArtifactKindVideo,
		ArtifactKindImage, ArtifactKindCSV, ArtifactKindTSV, ArtifactKindPSV, ArtifactKindSSV:
		return true
	default:
		return false
	}
}

// IsDir reports whether the artifact is a directory.
func (k ArtifactKind) IsDir() bool {
	return k == ArtifactKindTensorboard || k == ArtifactKindDir
}

// IsFile reports whether the artifact is a single file.
func (k ArtifactKind) IsFile() bool {
	return k == ArtifactKindDockerfile || k == ArtifactKindFile || k == ArtifactKindEnv
}

// IsFileOrDir reports whether the artifact may be either.
func (k ArtifactKind) IsFileOrDir() bool {
	return k == ArtifactKindData || k == ArtifactKindModel
}

// MarshalJSON implements json.Marshaler.
func (k ArtifactKind) MarshalJSON() ([]byte, error) {
	return marshalEnum("ArtifactKind", k, artifactKinds)
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *ArtifactKind) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("ArtifactKind", data, artifactKinds)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseArtifactKind converts a token, e.g. from a URL path, into an
// ArtifactKind.
func ParseArtifactKind(s string) (ArtifactKind, error) {
	k := ArtifactKind(s)
	if !k.IsValid() {
		return "", &EnumError{Enum: "ArtifactKind", Value: s}
	}
	return k, nil
}

// Optimization is the direction of an optimization metric.
type Optimization string

// Optimization directions.
const (
	OptimizationUnspecified Optimization = ""
	OptimizationMaximize    Optimization = "maximize"
	OptimizationMinimize    Optimization = "minimize"
)

var optimizations = []Optimization{OptimizationMaximize, OptimizationMinimize}

// OptimizationValues returns the wire vocabulary.
func OptimizationValues() []Optimization { return slices.Clone(optimizations) }

// IsValid reports whether o is a wire token.
func (o Optimization) IsValid() bool { return slices.Contains(optimizations, o) }

// MarshalJSON implements json.Marshaler.
func (o Optimization) MarshalJSON() ([]byte, error) {
	return marshalEnum("Optimization", o, optimizations)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optimization) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("Optimization", data, optimizations)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// OptimizationResourceType is the numeric type of a tuning resource.
type OptimizationResourceType string

// Resource types.
const (
	OptimizationResourceTypeUnspecified OptimizationResourceType = ""
	OptimizationResourceTypeInt         OptimizationResourceType = "int"
	OptimizationResourceTypeFloat       OptimizationResourceType = "float"
)

var optimizationResourceTypes = []OptimizationResourceType{OptimizationResourceTypeInt, OptimizationResourceTypeFloat}

// OptimizationResourceTypeValues returns the wire vocabulary.
func OptimizationResourceTypeValues() []OptimizationResourceType {
	return slices.Clone(optimizationResourceTypes)
}

// IsValid reports whether t is a wire token.
func (t OptimizationResourceType) IsValid() bool {
	return slices.Contains(optimizationResourceTypes, t)
}

// MarshalJSON implements json.Marshaler.
func (t OptimizationResourceType) MarshalJSON() ([]byte, error) {
	return marshalEnum("OptimizationResourceType", t, optimizationResourceTypes)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *OptimizationResourceType) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("OptimizationResourceType", data, optimizationResourceTypes)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ConnectionKind is the type of an external connection.
type ConnectionKind string

// Connection kinds.
const (
	ConnectionKindUnspecified ConnectionKind = ""
	ConnectionKindHostPath    ConnectionKind = "host_path"
	ConnectionKindVolumeClaim ConnectionKind = "volume_claim"
	ConnectionKindGCS         ConnectionKind = "gcs"
	ConnectionKindS3          ConnectionKind = "s3"
	ConnectionKindWASB        ConnectionKind = "wasb"
	ConnectionKindRegistry    ConnectionKind = "registry"
	ConnectionKindGit         ConnectionKind = "git"
	ConnectionKindAWS         ConnectionKind = "aws"
	ConnectionKindGCP         ConnectionKind = "gcp"
	ConnectionKindAzure       ConnectionKind = "azure"
	ConnectionKindMySQL       ConnectionKind = "mysql"
	ConnectionKindPostgres    ConnectionKind = "postgres"
	ConnectionKindOracle      ConnectionKind = "oracle"
	ConnectionKindVertica     ConnectionKind = "vertica"
	ConnectionKindSQLite      ConnectionKind = "sqlite"
	ConnectionKindMSSQL       ConnectionKind = "mssql"
	ConnectionKindRedis       ConnectionKind = "redis"
	ConnectionKindPresto      ConnectionKind = "presto"
	ConnectionKindMongo       ConnectionKind = "mongo"
	ConnectionKindCassandra   ConnectionKind = "cassandra"
	ConnectionKindFTP         ConnectionKind = "ftp"
	ConnectionKindGRPC        ConnectionKind = "grpc"
	ConnectionKindHDFS        ConnectionKind = "hdfs"
	ConnectionKindHTTP        ConnectionKind = "http"
	ConnectionKindPigCLI      ConnectionKind = "pig_cli"
	ConnectionKindHiveCLI     ConnectionKind = "hive_cli"
	ConnectionKindSlack       ConnectionKind = "slack"
	ConnectionKindDiscord     ConnectionKind = "discord"
	ConnectionKindMattermost  ConnectionKind = "mattermost"
	ConnectionKindPagerduty   ConnectionKind = "pagerduty"
	ConnectionKindHipchat     ConnectionKind = "hipchat"
	ConnectionKindWebhook     ConnectionKind = "webhook"
	ConnectionKindCustom      ConnectionKind = "custom"
)

var connectionKinds = []ConnectionKind{
	ConnectionKindHostPath, ConnectionKindVolumeClaim, ConnectionKindGCS, ConnectionKindS3,
	ConnectionKindWASB, ConnectionKindRegistry, ConnectionKindGit, ConnectionKindAWS,
	ConnectionKindGCP, ConnectionKindAzure, ConnectionKindMySQL, ConnectionKindPostgres,
	ConnectionKindOracle, ConnectionKindVertica, ConnectionKindSQLite, ConnectionKindMSSQL,
	ConnectionKindRedis, ConnectionKindPresto, ConnectionKindMongo, ConnectionKindCassandra,
	ConnectionKindFTP, ConnectionKindGRPC, ConnectionKindHDFS, ConnectionKindHTTP,
	ConnectionKindPigCLI, ConnectionKindHiveCLI, ConnectionKindSlack, ConnectionKindDiscord,
	ConnectionKindMattermost, ConnectionKindPagerduty, ConnectionKindHipchat, ConnectionKindWebhook,
	ConnectionKindCustom,
}

// ConnectionKindValues returns the wire vocabulary.
func ConnectionKindValues() []ConnectionKind { return slices.Clone(connectionKinds) }

// IsValid reports whether k is a wire token.
func (k ConnectionKind) IsValid() bool { return slices.Contains(connectionKinds, k) }

// MarshalJSON implements json.Marshaler.
func (k ConnectionKind) MarshalJSON() ([]byte, error) {
	return marshalEnum("ConnectionKind", k, connectionKinds)
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *ConnectionKind) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("ConnectionKind", data, connectionKinds)
	if err != nil {
		return err
	}
	*k = v
	return nil
}
