package chstate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/filetug/filechooser/pkg/chooser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withStateFile(t *testing.T) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), AppDirName, argumentsFileName)
	orig := stateFilePath
	stateFilePath = func() string { return filePath }
	t.Cleanup(func() { stateFilePath = orig })
	return filePath
}

func sampleConfig() chooser.Config {
	return chooser.NewBuilder(chooser.FileChooser, chooser.ListenerFunc(func(string) {})).
		SetTitle("Open document").
		SetFileFormats(".pdf", ".txt").
		SetDirectoryIcon("D").
		Config()
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(sampleConfig())
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "chooser_type: file")
	assert.Contains(t, text, "title: Open document")
	assert.Contains(t, text, "- .pdf")
	assert.Contains(t, text, "directory_icon: D")

	dirData, err := Marshal(chooser.DefaultConfig(chooser.DirectoryChooser))
	require.NoError(t, err)
	assert.NotContains(t, string(dirData), "title:")
	assert.NotContains(t, string(dirData), "file_formats:")
}

func TestUnmarshal(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		cfg := sampleConfig()
		data, err := Marshal(cfg)
		require.NoError(t, err)
		restored, err := Unmarshal(data)
		require.NoError(t, err)
		assert.Equal(t, cfg, restored)
	})

	t.Run("invalid_mode", func(t *testing.T) {
		_, err := Unmarshal([]byte("chooser_type: folder\nfile_icon: f\ndirectory_icon: d\nprevious_directory_icon: p\n"))
		assert.ErrorContains(t, err, "invalid chooser arguments")
	})

	t.Run("missing_icon", func(t *testing.T) {
		_, err := Unmarshal([]byte("chooser_type: file\nfile_icon: f\ndirectory_icon: d\n"))
		assert.ErrorContains(t, err, "PreviousDirectoryIcon")
	})

	t.Run("unknown_field", func(t *testing.T) {
		_, err := Unmarshal([]byte("chooser_type: file\nchooser_listener: x\n"))
		assert.ErrorContains(t, err, "failed to decode")
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Unmarshal([]byte("chooser_type: [file\n"))
		assert.Error(t, err)
	})
}

func TestSaveAndLoad(t *testing.T) {
	filePath := withStateFile(t)

	_, err := Load()
	assert.ErrorIs(t, err, ErrNoSavedArguments)

	cfg := sampleConfig()
	require.NoError(t, Save(cfg))
	assert.Equal(t, filePath, FilePath())
	_, err = os.Stat(filePath)
	require.NoError(t, err)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_RejectsInvalid(t *testing.T) {
	filePath := withStateFile(t)
	err := Save(chooser.Config{Mode: chooser.FileChooser})
	assert.Error(t, err)
	_, statErr := os.Stat(filePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed_file", func(t *testing.T) {
		filePath := withStateFile(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte("chooser_type: [\n"), 0o644))
		_, err := Load()
		assert.ErrorContains(t, err, "failed to read")
	})

	t.Run("unknown_field", func(t *testing.T) {
		filePath := withStateFile(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		data := []byte("chooser_type: file\nfile_icon: f\ndirectory_icon: d\nprevious_directory_icon: p\nlistener: x\n")
		require.NoError(t, os.WriteFile(filePath, data, 0o644))

		_, err := Load()
		assert.ErrorContains(t, err, "listener")
		_, err = Unmarshal(data)
		assert.ErrorContains(t, err, "listener")
	})

	t.Run("empty_file", func(t *testing.T) {
		filePath := withStateFile(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, nil, 0o644))
		_, err := Load()
		assert.ErrorIs(t, err, ErrNoSavedArguments)
	})

	t.Run("invalid_content", func(t *testing.T) {
		filePath := withStateFile(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte("chooser_type: sideways\n"), 0o644))
		_, err := Load()
		assert.ErrorContains(t, err, "invalid chooser arguments")
	})
}

func TestFilePath_Default(t *testing.T) {
	path := FilePath()
	assert.Equal(t, argumentsFileName, filepath.Base(path))
	assert.Equal(t, AppDirName, filepath.Base(filepath.Dir(path)))
}
