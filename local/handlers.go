package local
import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/RomaZinkevich/Hide-n-C/stegano/img"
	"github.com/RomaZinkevich/Hide-n-C/util"
)

// askPath repeats the question until the answer is a non-empty path of
// acceptable length and, when extensions is set, a known extension.
func (s *Session) askPath(prompt string, extensions []string) (string, error) {
	limit := s.conf.Limits.MaxPathLength
	for {
		path, err := s.p.Ask(prompt)
		if err != nil {
			return "", err
		}
		path = strings.TrimSpace(path)
		if path == "" || len(path) > limit {
			s.p.Printf("Path must be between 1 and %d characters.\n", limit)
			continue
		}
		if extensions != nil && !util.HasExtension(path, extensions) {
			s.p.Printf("Destination must end with .%s\n", strings.Join(extensions, ", ."))
			continue
		}
		return path, nil
	}
}

func (s *Session) askMessage() ([]byte, error) {
	limit := s.conf.Limits.MaxMessageLength
	for {
		text, err := s.p.Ask(fmt.Sprintf("Message (1-%d characters): ", limit))
		if err != nil {
			return nil, err
		}
		msg, err := util.ToSingleByte(text)
		if err != nil {
			s.p.Println(err)
			continue
		}
		if len(msg) == 0 || len(msg) > limit {
			s.p.Printf("Message must be between 1 and %d characters, got %d.\n", limit, len(msg))
			continue
		}
		return msg, nil
	}
}

func (s *Session) load(id, path string) (*img.PixelBuffer, error) {
	buf, err := img.Load(path)
	if err != nil {
		return nil, err
	}
	s.p.Println("Image loaded:", path)
	s.p.Printf("Dimensions: %dx%d\n", buf.Width, buf.Height)
	s.p.Println("Channels:", img.Channels)
	util.DebugPrintf("[%s] %s: %d channel slots, capacity %d bytes",
		id, path, buf.Slots(), img.Capacity(buf.Width, buf.Height))
	return buf, nil
}

func (s *Session) hide() error {
	src, err := s.askPath("Source image: ", nil)
	if err != nil {
		return err
	}
	msg, err := s.askMessage()
	if err != nil {
		return err
	}
	dst, err := s.askPath("Destination image: ", s.conf.Limits.Extensions)
	if err != nil {
		return err
	}

	id := util.GenID()
	s.logger.LogInfo(fmt.Sprintf("[%s] hide %d bytes: %s -> %s", id, len(msg), src, dst))
	if err := s.doHide(id, src, msg, dst); err != nil {
		s.report(id, err)
	}
	return nil
}

func (s *Session) doHide(id, src string, msg []byte, dst string) error {
	buf, err := s.load(id, src)
	if err != nil {
		return err
	}
	if err := img.Hide(buf, msg); err != nil {
		return err
	}

	format := img.OutputFormat(dst, s.conf.Output.Format)
	if !util.HasExtension(dst, []string{format}) {
		s.logger.LogWarning(fmt.Sprintf("[%s] writing %s data to %s", id, strings.ToUpper(format), dst))
	}
	if err := img.Save(dst, buf, s.conf.Output.Format); err != nil {
		return err
	}
	s.p.Printf("%s file created: %s\n", strings.ToUpper(format), dst)
	return nil
}

func (s *Session) reveal() error {
	src, err := s.askPath("Source image: ", nil)
	if err != nil {
		return err
	}

	id := util.GenID()
	s.logger.LogInfo(fmt.Sprintf("[%s] reveal: %s", id, src))
	buf, err := s.load(id, src)
	if err == nil {
		var msg []byte
		if msg, err = img.Reveal(buf); err == nil {
			text := util.FromSingleByte(msg)
			s.p.Printf("Hidden message (%d characters): %s\n", utf8.RuneCountInString(text), text)
			return nil
		}
	}
	s.report(id, err)
	return nil
}
