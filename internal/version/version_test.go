package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	old := Version
	Version = "1.2.3"
	defer func() { Version = old }()

	info := Info()
	if !strings.HasPrefix(info, "readlevel 1.2.3 ") {
		t.Errorf("Info() = %q", info)
	}
	if Short() != "1.2.3" {
		t.Errorf("Short() = %q", Short())
	}
}
