package launch

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// LaunchFile is the file name the platform reads processes from.
const LaunchFile = "launch.toml"

// HCLFile is the optional HCL rendering of the same processes.
const HCLFile = "launch.hcl"

// TOML encodes the launch descriptor as launch.toml.
func TOML(l *Launch) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(l); err != nil {
		return nil, fmt.Errorf("encode %s: %w", LaunchFile, err)
	}
	return buf.Bytes(), nil
}

// Builder collects the rendered launch files.
type Builder struct {
	launchTOML []byte
	launchHCL  []byte
	emitHCL    bool
}

// NewBuilder returns a new Builder.
func NewBuilder(emitHCL bool) *Builder {
	return &Builder{emitHCL: emitHCL}
}

// SetLaunchTOML sets the launch.toml content.
func (b *Builder) SetLaunchTOML(content []byte) {
	b.launchTOML = content
}

// SetLaunchHCL sets the launch.hcl content (optional).
func (b *Builder) SetLaunchHCL(content []byte) {
	b.launchHCL = content
}

// Build returns a map of filename -> content for all launch files.
func (b *Builder) Build() map[string][]byte {
	out := make(map[string][]byte)
	if len(b.launchTOML) > 0 {
		out[LaunchFile] = b.launchTOML
	}
	if b.emitHCL && len(b.launchHCL) > 0 {
		out[HCLFile] = b.launchHCL
	}
	return out
}
