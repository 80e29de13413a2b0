// Package emit renders built topologies as deployable declaration artifacts.
//
// Emission is deterministic: the same topology and options produce
// byte-identical output on every run. Map keys serialise sorted and no
// timestamps or random identifiers are generated.
package emit

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	netweave "github.com/netweave/netweave"
	"github.com/netweave/netweave/internal/topology"
)

// Target selects the artifact family to emit.
type Target string

const (
	// TargetCloudFormation emits a single CloudFormation template.
	TargetCloudFormation Target = "cloudformation"

	// TargetK8s emits ACK custom resource manifests (KRM style).
	TargetK8s Target = "k8s"
)

// ErrUnsupportedTarget is returned for targets no emitter implements.
var ErrUnsupportedTarget = errors.New("unsupported emission target")

// Format selects the artifact encoding for targets that support both.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Options configures emission.
type Options struct {
	// Format is the artifact encoding. Empty defaults to JSON for the
	// CloudFormation target; the k8s target always emits YAML.
	Format Format

	// Description overrides the generated template description.
	Description string

	// Namespace is the Kubernetes namespace for ACK manifests.
	// Empty defaults to "ack-system".
	Namespace string
}

// Emit renders the topology for the given target.
func Emit(t *topology.Topology, target Target, opts Options) ([]byte, error) {
	switch target {
	case TargetCloudFormation:
		tmpl, err := CloudFormation(t, opts)
		if err != nil {
			return nil, err
		}
		switch opts.Format {
		case FormatJSON, "":
			return ToJSON(tmpl)
		case FormatYAML:
			return ToYAML(tmpl)
		default:
			return nil, fmt.Errorf("unsupported format: %q", opts.Format)
		}
	case TargetK8s:
		return KRM(t, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTarget, target)
	}
}

// ToJSON serializes the template to JSON.
func ToJSON(t *netweave.Template) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// ToYAML serializes the template to YAML.
// The template is normalised through JSON first so intrinsic values emit
// their CloudFormation wire form instead of their Go struct fields.
func ToYAML(t *netweave.Template) ([]byte, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	var normalized netweave.Template
	if err := json.Unmarshal(data, &normalized); err != nil {
		return nil, err
	}
	return yaml.Marshal(&normalized)
}
