package main
import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/RomaZinkevich/Hide-n-C/config"
	"github.com/RomaZinkevich/Hide-n-C/local"
)

const (
	HidencFolder   = ".hidenc"
	ConfigFilename = "config.yaml"
)

func main() {
	command := ""
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "":
		conf, err := loadConfig()
		if err != nil {
			fatal("Failed to load configuration:", err)
		}
		if err = local.RunSession(conf, os.Stdin, os.Stdout); err != nil {
			fatal("Failed to read input:", err)
		}
	case "defconf":
		data, err := yaml.Marshal(config.DefaultConfig())
		if err != nil {
			fatal("Failed to encode default configuration:", err)
		}
		os.Stdout.Write(data)
	default:
		help()
	}
}

// loadConfig reads ~/.hidenc/config.yaml when it exists; nothing is ever
// written there.
func loadConfig() (*config.FullConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return config.DefaultConfig(), nil
	}
	configFile := filepath.Join(home, HidencFolder, ConfigFilename)
	if _, err := os.Stat(configFile); err != nil {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(configFile)
}

func fatal(args ...any) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func help() {
	line := `Usage: ./hidenc [command]

Without a command an interactive menu is started:
	1		hide a message in an image (written as 24-bit BMP)
	2		reveal a message hidden in an image
	0		quit

The following commands are supported:
	defconf		print the default configuration (~/.hidenc/config.yaml)
	help		show this message
`

	fmt.Printf("%s", line)
}
