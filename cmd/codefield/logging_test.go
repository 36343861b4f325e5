package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir runs the test from an empty directory and restores the standard logger afterwards
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

func TestLoggingDiscardsWithoutDebug(t *testing.T) {
	inTempDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected no log file without -debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected io.Discard writer, got %T", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Errorf("Expected %s not to be created, stat returned %v", logDir, err)
	}
}

func TestLoggingWritesCallbacksToFile(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file with -debug")
	}
	defer f.Close()

	log.Printf("field %s complete: %q", "otp", "123456")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	for _, want := range []string{"codefield started", `field otp complete: "123456"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Expected log to contain %q, got:\n%s", want, data)
		}
	}
}

func TestLoggingRotatesOversizedFile(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	old := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(old, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file after rotation")
	}
	defer f.Close()

	matches, err := filepath.Glob(filepath.Join(logDir, "codefield_*.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("Expected one rotated file, got %v (err %v)", matches, err)
	}
	if info, err := os.Stat(matches[0]); err != nil || info.Size() != maxLogSize+1 {
		t.Errorf("Expected rotated file to keep the old content, got %v (err %v)", info, err)
	}
	if info, err := os.Stat(old); err != nil || info.Size() > maxLogSize {
		t.Errorf("Expected fresh log file, got %v (err %v)", info, err)
	}
}
