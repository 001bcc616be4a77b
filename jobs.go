package main

import (
	"bufio"
	"os"
	"os/exec"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/creack/pty"
)

type jobMsg interface {
	isJob()
}

type jobStartedMsg struct {
	Title string
}

func (jobStartedMsg) isJob() {}

type jobLogMsg struct {
	Title string
	Line  string
}

func (jobLogMsg) isJob() {}

type jobFinishedMsg struct {
	Title string
	Err   error
}

func (jobFinishedMsg) isJob() {}

type jobChannelClosedMsg struct{}

func (jobChannelClosedMsg) isJob() {}

// jobRequest describes one subprocess run on behalf of the dashboard,
// e.g. fetching a product image or opening an export in the editor.
type jobRequest struct {
	title    string
	dir      string
	command  string
	args     []string
	env      []string
	onFinish func(error)
}

// jobManager runs requests one at a time through a pty so interactive
// tools behave, streaming their output back as messages.
type jobManager struct {
	queue   []jobRequest
	current *jobRequest
	ch      chan jobMsg
	running bool
}

func newJobManager() *jobManager {
	return &jobManager{}
}

func (jm *jobManager) Enqueue(req jobRequest) tea.Cmd {
	jm.queue = append(jm.queue, req)
	return jm.nextCmd()
}

func (jm *jobManager) Busy() bool {
	return jm.running || len(jm.queue) > 0
}

func (jm *jobManager) Handle(msg jobMsg) tea.Cmd {
	switch msg := msg.(type) {
	case jobStartedMsg, jobLogMsg:
		return waitForJobMsg(jm.ch)
	case jobFinishedMsg:
		if jm.current != nil && jm.current.onFinish != nil {
			jm.current.onFinish(msg.Err)
		}
		return waitForJobMsg(jm.ch)
	case jobChannelClosedMsg:
		jm.running = false
		jm.current = nil
		jm.ch = nil
		return jm.nextCmd()
	}
	return nil
}

func (jm *jobManager) nextCmd() tea.Cmd {
	if jm.running {
		return nil
	}
	if len(jm.queue) == 0 {
		return nil
	}
	req := jm.queue[0]
	jm.queue = jm.queue[1:]
	jm.current = &req
	jm.running = true

	ch := make(chan jobMsg)
	jm.ch = ch
	go runJob(req, ch)
	return waitForJobMsg(ch)
}

func runJob(req jobRequest, ch chan<- jobMsg) {
	defer close(ch)

	ch <- jobStartedMsg{Title: req.title}

	cmd := exec.Command(req.command, req.args...)
	if req.dir != "" {
		cmd.Dir = req.dir
	}
	if len(req.env) > 0 {
		env := append([]string{}, os.Environ()...)
		env = append(env, req.env...)
		cmd.Env = env
	}

	ptmx, err := pty.Start(cmd)
	if err != nil {
		ch <- jobLogMsg{Title: req.title, Line: err.Error()}
		ch <- jobFinishedMsg{Title: req.title, Err: err}
		return
	}
	defer ptmx.Close()

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(ptmx)
		for scanner.Scan() {
			ch <- jobLogMsg{Title: req.title, Line: scanner.Text()}
		}
	}()

	wg.Wait()
	err = cmd.Wait()
	ch <- jobFinishedMsg{Title: req.title, Err: err}
}

func waitForJobMsg(ch <-chan jobMsg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return jobChannelClosedMsg{}
		}
		return msg
	}
}
