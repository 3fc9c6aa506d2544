package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"github.com/gorilla/websocket"

	inknet "inkpad/internal/net"
	"inkpad/internal/state"
	"inkpad/internal/ui"
)

const defaultPort = 8777

func main() {
	join := flag.String("join", "", `pad to join, "host:port" or "auto" to discover one`)
	port := flag.Int("port", defaultPort, "share port when hosting")
	flag.Parse()

	doc := state.NewDocument()
	board := ui.NewPadWidget(doc)

	if *join != "" {
		runClient(*join, board, doc)
	} else {
		runHost(*port, board, doc)
	}
}

func runHost(port int, board *ui.PadWidget, doc *state.Document) {
	log.Println("starting as host")
	hub := inknet.NewHub()

	// Local ink goes out to every peer; a local clear only removes this
	// site's strokes, here and everywhere else.
	board.OnStroke = func(s state.Stroke) {
		stroke := s
		hub.Broadcast(inknet.Message{Type: inknet.MsgDraw, Stroke: &stroke}, nil)
	}
	board.OnClear = func() {
		board.ClearOwner(doc.Site())
		hub.Broadcast(inknet.Message{Type: inknet.MsgClear, Owner: doc.Site()}, nil)
	}

	hub.OnMessage = func(msg inknet.Message, from *websocket.Conn) {
		switch msg.Type {
		case inknet.MsgDraw:
			if msg.Stroke == nil {
				return
			}
			stroke := *msg.Stroke
			fyne.Do(func() { board.AddRemote(stroke) })
			hub.Broadcast(msg, from)
		case inknet.MsgClear:
			fyne.Do(func() { board.ClearOwner(msg.Owner) })
			hub.Broadcast(msg, from)
		}
	}

	go func() {
		if err := hub.ListenAndServe(port); err != nil {
			log.Fatalf("share server failed: %v", err)
		}
	}()

	if server, err := inknet.Advertise(port); err != nil {
		log.Printf("mDNS advertise failed: %v", err)
	} else {
		defer server.Shutdown()
	}

	status := fmt.Sprintf("Hosting at %s:%d", inknet.OutgoingIP(), port)
	ui.RunApp(board, doc, status)
}

func runClient(addr string, board *ui.PadWidget, doc *state.Document) {
	log.Println("starting as client")

	if addr == "auto" {
		found := make(chan string, 1)
		if err := inknet.Browse(func(a string) {
			select {
			case found <- a:
			default:
			}
		}); err != nil {
			log.Fatalf("mDNS browse failed: %v", err)
		}
		select {
		case addr = <-found:
			log.Printf("discovered pad at %s", addr)
		default:
			log.Fatal("no shared pad found on the local network")
		}
	}

	go connectToHost(addr, board, doc)
	ui.RunApp(board, doc, "Joining "+addr)
}

func connectToHost(addr string, board *ui.PadWidget, doc *state.Document) {
	// Give the window a moment to come up before ink starts arriving.
	time.Sleep(500 * time.Millisecond)

	sess, err := inknet.Dial(addr)
	if err != nil {
		log.Printf("connection failed: %v", err)
		return
	}
	defer sess.Close()

	board.OnStroke = func(s state.Stroke) {
		stroke := s
		if err := sess.Send(inknet.Message{Type: inknet.MsgDraw, Stroke: &stroke}); err != nil {
			log.Printf("sending stroke: %v", err)
		}
	}
	board.OnClear = func() {
		board.ClearOwner(doc.Site())
		if err := sess.Send(inknet.Message{Type: inknet.MsgClear, Owner: doc.Site()}); err != nil {
			log.Printf("sending clear: %v", err)
		}
	}

	err = sess.Listen(func(msg inknet.Message) {
		switch msg.Type {
		case inknet.MsgDraw:
			if msg.Stroke == nil {
				return
			}
			stroke := *msg.Stroke
			fyne.Do(func() { board.AddRemote(stroke) })
		case inknet.MsgClear:
			fyne.Do(func() { board.ClearOwner(msg.Owner) })
		}
	})
	log.Printf("disconnected: %v", err)
}
