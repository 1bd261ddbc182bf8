//go:build linux

package hook

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	evKey      = 1
	keyRelease = 0
	keyPress   = 1
	keyRepeat  = 2
)

// input_event is 24 bytes on 64-bit Linux:
// timeval (16 bytes) + type (2) + code (2) + value (4)
const inputEventSize = 24

type evdevSource struct {
	events chan Event
	files  []*os.File
	stop   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

// New returns the default source for this platform: evdev, reading
// /dev/input directly. Requires user to be in the 'input' group.
// Unlike the portable hook it works on Wayland and in plain consoles.
func New() Source {
	return &evdevSource{
		events: make(chan Event, 64),
	}
}

func (s *evdevSource) Start() (<-chan Event, error) {
	keyboards, err := findKeyboards()
	if err != nil {
		return nil, fmt.Errorf("finding keyboards: %w", err)
	}
	if len(keyboards) == 0 {
		return nil, fmt.Errorf("no keyboard devices found (is user in 'input' group?)")
	}

	s.stop = make(chan struct{})

	for _, path := range keyboards {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		s.files = append(s.files, f)
		s.wg.Add(1)
		go s.readEvents(f)
	}

	if len(s.files) == 0 {
		return nil, fmt.Errorf("could not open any keyboard device (run: sudo usermod -aG input $USER, then re-login)")
	}

	go func() {
		s.wg.Wait()
		close(s.events)
	}()

	return s.events, nil
}

func (s *evdevSource) readEvents(f *os.File) {
	defer s.wg.Done()
	buf := make([]byte, inputEventSize*16)

	for {
		select {
		case <-s.stop:
			return
		default:
		}

		n, err := f.Read(buf)
		if err != nil {
			return
		}

		for i := 0; i+inputEventSize <= n; i += inputEventSize {
			sec := int64(binary.LittleEndian.Uint64(buf[i:]))
			usec := int64(binary.LittleEndian.Uint64(buf[i+8:]))
			evType := binary.LittleEndian.Uint16(buf[i+16:])
			evCode := binary.LittleEndian.Uint16(buf[i+18:])
			evValue := int32(binary.LittleEndian.Uint32(buf[i+20:]))

			if evType != evKey {
				continue
			}

			var kind Kind
			switch evValue {
			case keyPress:
				kind = KindPress
			case keyRelease:
				kind = KindRelease
			case keyRepeat:
				kind = KindOther
			default:
				continue
			}

			ev := Event{
				Kind: kind,
				Key:  evdevKey(evCode),
				When: time.Unix(sec, usec*1000),
			}
			select {
			case s.events <- ev:
			case <-s.stop:
				return
			}
		}
	}
}

func (s *evdevSource) Stop() error {
	s.once.Do(func() {
		if s.stop != nil {
			close(s.stop)
		}
		for _, f := range s.files {
			f.Close()
		}
	})
	return nil
}

// Diagnose checks evdev access and returns a status message.
func (s *evdevSource) Diagnose() (string, error) {
	keyboards, err := findKeyboards()
	if err != nil {
		return "", fmt.Errorf("cannot scan input devices: %w", err)
	}
	if len(keyboards) == 0 {
		return "", fmt.Errorf("no keyboard devices found (is user in 'input' group?)")
	}

	var opened string
	for _, path := range keyboards {
		f, err := os.Open(path)
		if err == nil {
			f.Close()
			opened = path
			break
		}
	}
	if opened == "" {
		return "", fmt.Errorf("found %d keyboard(s) but cannot open any (run: sudo usermod -aG input $USER)", len(keyboards))
	}

	return fmt.Sprintf("%d keyboard(s) found, opened %s", len(keyboards), opened), nil
}

func findKeyboards() ([]string, error) {
	entries, err := os.ReadDir("/dev/input")
	if err != nil {
		return nil, err
	}

	var keyboards []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "event") {
			continue
		}
		path := filepath.Join("/dev/input", e.Name())
		if isKeyboard(e.Name()) {
			keyboards = append(keyboards, path)
		}
	}
	return keyboards, nil
}

func isKeyboard(eventName string) bool {
	capsPath := filepath.Join("/sys/class/input", eventName, "device", "capabilities", "key")
	data, err := os.ReadFile(capsPath)
	if err != nil {
		return false
	}
	// Real keyboards have long key capability bitmaps
	caps := strings.TrimSpace(string(data))
	return len(caps) > 10
}
