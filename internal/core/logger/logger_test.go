package logger

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewWithRotateEscreveNoArquivo(t *testing.T) {
	dir := t.TempDir()
	l, cleanup := NewWithRotate("info", true, filepath.Join(dir, "app.log"), 1, 1, 1, false)
	defer cleanup()

	l.Info("linha de teste")
	cleanup()

	matches, err := filepath.Glob(filepath.Join(dir, "app.log"))
	if err != nil || len(matches) == 0 {
		t.Fatalf("arquivo de log não foi criado: %v", err)
	}
}

func TestToWriterNaoQuebraLinhaVazia(t *testing.T) {
	l, cleanup := New("debug", true)
	defer cleanup()

	w := ToWriter(l, zapcore.InfoLevel)
	n, err := w.Write([]byte("mensagem via io.Writer\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n != len("mensagem via io.Writer\n") {
		t.Fatalf("Write devolveu %d bytes", n)
	}
}

func TestToStdLogger(t *testing.T) {
	l, cleanup := New("debug", true)
	defer cleanup()

	std, err := ToStdLogger(l, zapcore.ErrorLevel)
	if err != nil {
		t.Fatal(err)
	}
	std.Print("erro via log padrão")
}

func TestRedirectStdLogDesfaz(t *testing.T) {
	l, cleanup := New("debug", true)
	defer cleanup()

	undo := RedirectStdLog(l, zapcore.InfoLevel)
	undo()
}
