package main

import (
	"github.com/fulldump/goconfig"
	"github.com/google/uuid"
	"github.com/karlseguin/veclist"
	"github.com/wsxiaoys/terminal/color"
	"go.uber.org/zap"
)

type Config struct {
	Capacity int  `usage:"capacity of the recent sessions list"`
	Sessions int  `usage:"number of sessions to add"`
	Debug    bool `usage:"log every operation"`
}

func main() {
	c := Config{
		Capacity: 4,
		Sessions: 10,
	}
	goconfig.Read(&c)

	logger, err := newLogger(c.Debug)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	handles(logger)
	recent(logger, c)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// handles shows deleted slots being handed out again.
func handles(logger *zap.Logger) {
	l := veclist.New[string]()
	spice := l.PushBack("spice")
	l.PushBack("flow")
	worm := l.PushFront("worm")
	show("pushed", l)

	value, _ := l.Delete(spice)
	logger.Debug("deleted", zap.Int("handle", spice), zap.String("value", value))
	show("deleted", l)

	sand := l.PushBack("sand")
	logger.Debug("pushed", zap.Int("handle", sand), zap.Bool("reused", sand == spice))
	show("reused", l)

	next, _ := l.Next(worm)
	color.Printf("@{c}next of %d:@| %s (handle %d), cap %d\n", worm, l.At(next), next, l.Cap())
}

// recent keeps the last sessions in a bounded list, logging evictions.
func recent(logger *zap.Logger, c Config) {
	b := veclist.NewBounded(veclist.Configure[string]().
		Capacity(c.Capacity).
		OnEvict(func(session string) {
			logger.Info("session evicted", zap.String("session", session))
		}))

	for i := 0; i < c.Sessions; i++ {
		session := uuid.NewString()
		h := b.Add(session)
		logger.Debug("session added", zap.String("session", session), zap.Int("handle", h), zap.Int("len", b.Len()))
	}

	color.Printf("@{g}recent sessions@| (%d/%d)\n", b.Len(), b.Cap())
	for h, session := range b.All() {
		color.Printf("  @{y}%3d@| %s\n", h, session)
	}
}

func show(label string, l *veclist.List[string]) {
	color.Printf("@{!}%-8s@| %s len=%d cap=%d\n", label, l, l.Len(), l.Cap())
}
