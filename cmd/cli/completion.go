package main

import (
	"fmt"
	"os"

	"github.com/posener/complete"
	"github.com/willabides/kongplete"
)

const appName = "cdinv"

type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh,fish" help:"Shell type (bash, zsh, fish)"`
}

func (cmd *CompletionCmd) Run(g *Globals) error {
	bin, err := os.Executable()
	if err != nil {
		bin = appName
	}
	script, err := completionScript(cmd.Shell, bin)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(g.Out, script)
	return err
}

// completionScript returns the shell snippet that hands completion requests
// back to bin, which answers them through kongplete.
func completionScript(shell, bin string) (string, error) {
	switch shell {
	case "bash":
		return fmt.Sprintf("complete -C %q %s\n", bin, appName), nil
	case "zsh":
		return fmt.Sprintf("autoload -U +X bashcompinit && bashcompinit\ncomplete -o nospace -C %q %s\n", bin, appName), nil
	case "fish":
		return fmt.Sprintf(`function __complete_%[2]s
    set -lx COMP_LINE (commandline -cp)
    test -z (commandline -ct)
    and set COMP_LINE "$COMP_LINE "
    %[1]q
end
complete -f -c %[2]s -a "(__complete_%[2]s)"
`, bin, appName), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}

// completionOptions wires the predictor names used in CLI struct tags.
func completionOptions() []kongplete.Option {
	return []kongplete.Option{
		kongplete.WithPredictor("inventory", complete.PredictOr(
			complete.PredictFiles("*.dat"),
			complete.PredictFiles("*.bin"),
			complete.PredictFiles("*.yaml"),
			complete.PredictFiles("*.yml"),
			complete.PredictFiles("*.db"),
			complete.PredictFiles("*.sqlite"),
			complete.PredictFiles("*.sqlite3"),
		)),
		kongplete.WithPredictor("config", complete.PredictFiles("*.toml")),
	}
}
