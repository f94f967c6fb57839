// Package catalog loads the bundled stories and serves them by id.
package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"story-time/internal/domain"
	"story-time/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

//go:embed stories
var bundled embed.FS

var patterns = []string{"*.json", "*.yaml", "*.yml"}

const maxConcurrentReads = 8

// Bundled returns the stories compiled into the binary.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "stories")
	if err != nil {
		panic(fmt.Sprintf("catalog: bundled stories: %v", err))
	}
	return sub
}

// Store is the read-only story catalog. The first successful load is kept
// for the life of the store.
type Store struct {
	fsys fs.FS

	mu      sync.RWMutex
	loaded  bool
	stories []domain.Story
	byID    map[string]int
}

// NewStore returns a catalog reading story files from the root of fsys.
func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// LoadStories returns every valid story in file-name order. Invalid stories
// are skipped. Any read or parse failure degrades to an empty catalog.
func (s *Store) LoadStories(ctx context.Context) []domain.Story {
	s.mu.RLock()
	if s.loaded {
		out := append([]domain.Story(nil), s.stories...)
		s.mu.RUnlock()
		return out
	}
	s.mu.RUnlock()

	stories, err := s.load(ctx)
	if err != nil {
		logger.Get().Error("Failed to load story catalog", zap.Error(err))
		return []domain.Story{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.stories = stories
		s.byID = make(map[string]int, len(stories))
		for i, story := range stories {
			s.byID[story.ID] = i
		}
		s.loaded = true
	}
	return append([]domain.Story(nil), s.stories...)
}

// GetStoryByID returns the story with id, or false when there is none.
func (s *Store) GetStoryByID(ctx context.Context, id string) (domain.Story, bool) {
	s.LoadStories(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return domain.Story{}, false
	}
	return s.stories[i], true
}

// Reload drops the loaded catalog so the next call reads the files again.
func (s *Store) Reload() {
	s.mu.Lock()
	s.loaded = false
	s.stories = nil
	s.byID = nil
	s.mu.Unlock()
}

func (s *Store) load(ctx context.Context) ([]domain.Story, error) {
	files, err := storyFiles(s.fsys)
	if err != nil {
		return nil, err
	}

	parsed := make([]domain.Story, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			story, err := readStory(s.fsys, name)
			if err != nil {
				return err
			}
			parsed[i] = story
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stories := make([]domain.Story, 0, len(parsed))
	seen := make(map[string]string, len(parsed))
	for i, story := range parsed {
		if err := story.Validate(); err != nil {
			logger.Get().Warn("Skipping invalid story",
				zap.String("file", files[i]),
				zap.String("story_id", story.ID),
				zap.Error(err),
			)
			continue
		}
		if prev, dup := seen[story.ID]; dup {
			logger.Get().Warn("Skipping duplicate story id",
				zap.String("file", files[i]),
				zap.String("story_id", story.ID),
				zap.String("first_file", prev),
			)
			continue
		}
		seen[story.ID] = files[i]
		stories = append(stories, story)
	}

	logger.Get().Info("Story catalog loaded",
		zap.Int("files", len(files)),
		zap.Int("stories", len(stories)),
	)
	return stories, nil
}

func storyFiles(fsys fs.FS) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

func readStory(fsys fs.FS, name string) (domain.Story, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return domain.Story{}, fmt.Errorf("read %s: %w", name, err)
	}

	var story domain.Story
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		err = json.Unmarshal(data, &story)
	default:
		err = yaml.Unmarshal(data, &story)
	}
	if err != nil {
		return domain.Story{}, fmt.Errorf("parse %s: %w", name, err)
	}
	return story, nil
}
