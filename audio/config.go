package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "CODEFIELD_AUDIO_ENABLED"
	EnvMasterVolume = "CODEFIELD_MASTER_VOLUME"
	EnvSFXVolumes   = "CODEFIELD_SFX_VOLUMES"
	EnvSampleRate   = "CODEFIELD_SAMPLE_RATE"
)

// AudioConfig holds feedback audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns enabled audio at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundReject:   0.8,
			SoundComplete: 1.0,
			SoundClear:    0.6,
		},
	}
}

// gain returns the effective volume for st
func (c *AudioConfig) gain(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return c.MasterVolume * v
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Effect volumes as a JSON object keyed by sound name
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
