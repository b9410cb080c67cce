package fabric

import "fmt"

// Secret store limits enforced before a request is sent.
const (
	SecretNameMaxLength    = 256
	SecretVersionMaxLength = 256
	SecretValueMaxSize     = 4 * 1024 * 1024
)

// SecretReference identifies a secret by name and optional version.
type SecretReference struct {
	Name    string `json:"Name" validate:"required,max=256"`
	Version string `json:"Version,omitempty" validate:"max=256"`
}

// String renders the reference as name or name@version.
func (r SecretReference) String() string {
	if r.Version == "" {
		return r.Name
	}
	return fmt.Sprintf("%s@%s", r.Name, r.Version)
}

// Secret is a secret reference together with its value. Value is empty when
// the value was not requested.
type Secret struct {
	SecretReference
	Value string `json:"Value,omitempty" validate:"maxbytes=4194304"`
}
