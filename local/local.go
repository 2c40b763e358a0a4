package local
import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/RomaZinkevich/Hide-n-C/config"
	sutil "github.com/RomaZinkevich/Hide-n-C/stegano/util"
	"github.com/RomaZinkevich/Hide-n-C/util"
)

/*
 * package local contains the interactive side of the tool: a menu loop that
 * asks for files and a message, validates their shape and hands them over to
 * the steganography code.
 */
const (
	HideOption   = "1"
	RevealOption = "2"
	QuitOption   = "0"

	menu = "\n1) hide a message\n2) reveal a message\n0) quit\n> "
)

type Session struct {
	conf   *config.FullConfig
	logger *util.Logger
	p      *util.Prompter
}

func NewSession(conf *config.FullConfig, logger *util.Logger, in io.Reader, out io.Writer) *Session {
	return &Session{
		conf:   conf,
		logger: logger,
		p:      util.NewPrompter(in, out),
	}
}

// RunSession builds everything a session needs from conf and runs it.
func RunSession(conf *config.FullConfig, in io.Reader, out io.Writer) error {
	// 1. ambient things first
	util.DebugMode = conf.Debug
	logger := util.NewLogger(&conf.Logger)

	// 2. then the menu loop
	return NewSession(conf, logger, in, out).Run()
}

// Run shows the menu until the user quits or the input ends. Failed
// operations are reported and the menu comes back; only input errors stop it.
func (s *Session) Run() error {
	for {
		choice, err := s.p.Ask(menu)
		if err != nil {
			return ignoreEOF(err)
		}
		switch strings.TrimSpace(choice) {
		case HideOption:
			err = s.hide()
		case RevealOption:
			err = s.reveal()
		case QuitOption:
			return nil
		default:
			s.p.Printf("Unknown option %q, choose %s, %s or %s.\n",
				choice, HideOption, RevealOption, QuitOption)
			continue
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// report prints a failed operation for the user and logs it.
func (s *Session) report(id string, err error) {
	s.logger.LogError(fmt.Errorf("[%s] %w", id, err))

	var hint string
	switch {
	case errors.Is(err, sutil.ErrIO):
		hint = "file access failed"
	case errors.Is(err, sutil.ErrUnsupportedChannelCount):
		hint = "only 3-channel RGB images are supported"
	case errors.Is(err, sutil.ErrMessageTooLarge), errors.Is(err, sutil.ErrImageTooSmall):
		hint = "the message does not fit into this image"
	case errors.Is(err, sutil.ErrTruncatedStream), errors.Is(err, sutil.ErrInvalidByteValue):
		hint = "no hidden message found"
	default:
		hint = "operation failed"
	}
	s.p.Printf("Error: %s: %v\n", hint, err)
}
