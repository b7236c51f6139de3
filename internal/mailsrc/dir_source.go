package mailsrc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/mail"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adewale-s/po-intake/internal/attach"
	"github.com/adewale-s/po-intake/internal/classify"
)

// DirSource reads .eml and .txt drops from a directory, in name order. A
// sibling directory named "<file>.attachments" contributes recovered
// attachment text. Messages that don't look like order requests are
// filtered here, before the pipeline ever sees them.
type DirSource struct {
	Dir    string
	Attach *attach.Extractor
	Log    *slog.Logger
}

func NewDirSource(dir string, att *attach.Extractor, log *slog.Logger) *DirSource {
	if log == nil {
		log = slog.Default()
	}
	return &DirSource{Dir: dir, Attach: att, Log: log}
}

func (s *DirSource) Fetch(ctx context.Context) ([]Message, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading mail source dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".eml", ".txt":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var msgs []Message
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		msg, err := s.readMessage(ctx, name)
		if err != nil {
			s.Log.Warn("skipping unreadable message", "file", name, "error", err)
			continue
		}
		if !classify.IsOrderEmail(msg.Subject + " " + msg.Body) {
			s.Log.Debug("skipping non-order email", "file", name, "subject", msg.Subject)
			continue
		}
		msgs = append(msgs, msg)
	}
	s.Log.Info("fetched messages", "dir", s.Dir, "count", len(msgs))
	return msgs, nil
}

func (s *DirSource) readMessage(ctx context.Context, name string) (Message, error) {
	path := filepath.Join(s.Dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return Message{}, err
	}

	var msg Message
	if strings.EqualFold(filepath.Ext(name), ".eml") {
		parsed, err := mail.ReadMessage(bytes.NewReader(data))
		if err != nil {
			return Message{}, fmt.Errorf("parsing eml: %w", err)
		}
		body, err := io.ReadAll(parsed.Body)
		if err != nil {
			return Message{}, err
		}
		msg = Message{Subject: parsed.Header.Get("Subject"), Body: string(body)}
	} else {
		// plain-text drop: the filename stands in for the subject
		base := strings.TrimSuffix(name, filepath.Ext(name))
		msg = Message{Subject: base, Body: string(data)}
	}

	msg.Body += s.attachmentText(ctx, path)
	return msg, nil
}

// attachmentText appends recovered text for every file under
// "<path>.attachments", each under its own marker.
func (s *DirSource) attachmentText(ctx context.Context, path string) string {
	if s.Attach == nil {
		return ""
	}
	dir := path + ".attachments"
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	var sb strings.Builder
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		text, err := s.Attach.Text(ctx, filepath.Join(dir, e.Name()))
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintf(&sb, "\n[extracted from %s]\n%s", e.Name(), text)
	}
	return sb.String()
}
