package device

import (
	"fmt"

	"go.uber.org/zap"
)

// SmartTV is a television.
type SmartTV struct {
	base

	channel int
}

var _ Television = (*SmartTV)(nil)

// NewSamsungTV manufactures a Samsung television.
func NewSamsungTV(log *zap.SugaredLogger) *SmartTV {
	return newSmartTV("Samsung", "QLED TV", log)
}

// NewLGTV manufactures an LG television.
func NewLGTV(log *zap.SugaredLogger) *SmartTV {
	return newSmartTV("LG", "OLED TV", log)
}

func newSmartTV(brand, name string, log *zap.SugaredLogger) *SmartTV {
	tv := new(SmartTV)
	tv.init(brand, name, KindTelevision, log)
	tv.channel = 1

	return tv
}

// SetChannel switches to a channel. Channels start at 1.
func (tv *SmartTV) SetChannel(channel int) {
	tv.mu.Lock()
	defer tv.mu.Unlock()

	tv.channel = max(channel, 1)
	tv.log.Debugf("Channel %d", tv.channel)
}

// Channel returns the current channel.
func (tv *SmartTV) Channel() int {
	tv.mu.Lock()
	defer tv.mu.Unlock()

	return tv.channel
}

// Status returns a one-line description of the television.
func (tv *SmartTV) Status() string {
	return fmt.Sprintf("%s, channel %d", tv.base.Status(), tv.Channel())
}

// Speaker is a sound system.
type Speaker struct {
	base

	volume int
}

var _ SoundSystem = (*Speaker)(nil)

// NewSonosSoundSystem manufactures a Sonos sound system.
func NewSonosSoundSystem(log *zap.SugaredLogger) *Speaker {
	return newSpeaker("Sonos", "Sound System", log)
}

// NewBoseSoundSystem manufactures a Bose sound system.
func NewBoseSoundSystem(log *zap.SugaredLogger) *Speaker {
	return newSpeaker("Bose", "Sound System", log)
}

func newSpeaker(brand, name string, log *zap.SugaredLogger) *Speaker {
	s := new(Speaker)
	s.init(brand, name, KindSoundSystem, log)

	return s
}

// SetVolume sets the level, clamped to 0..100.
func (s *Speaker) SetVolume(level int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.volume = clamp(level)
	s.log.Debugf("Volume %d%%", s.volume)
}

// Volume returns the current level.
func (s *Speaker) Volume() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.volume
}

// Status returns a one-line description of the sound system.
func (s *Speaker) Status() string {
	return fmt.Sprintf("%s, volume %d%%", s.base.Status(), s.Volume())
}
