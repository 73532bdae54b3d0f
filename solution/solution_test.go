package solution

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hrm/cpu"
)

const officePath = "testdata/office.yaml"

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load(officePath)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(officePath, cfg.Path)
	assert.Equal([]string{
		"bad_register",
		"busy_mail_room",
		"mail_room",
		"no_outbox",
		"rainy_summer",
		"runaway",
		"tripler_room",
		"wrong_answer",
		"zero_exterminator",
	}, cfg.Names())

	sol, err := cfg.Get("zero_exterminator")
	assert.NoError(err)
	assert.Equal("zero_exterminator", sol.Name)
	assert.Equal(4, sol.Registers)
	assert.Equal(map[int]string{3: "0"}, sol.Floor)
	assert.Equal([]string{"8", "0", "-4", "0"}, sol.InboxTokens())
	assert.Equal([]string{"8", "-4"}, sol.OutboxTokens())

	sol, err = cfg.Get("rainy_summer")
	assert.NoError(err)
	assert.Equal(Code{{Label: "start", Lines: []string{
		"INBOX", "COPY_TO 0", "INBOX", "ADD 0", "OUTBOX", "JUMP start",
	}}}, sol.Code)

	sol, err = cfg.Get("tripler_room")
	assert.NoError(err)
	assert.Equal(map[string]string{"TILE": "2"}, sol.Defines)

	_, err = Load("testdata/missing.yaml")
	assert.Error(err)
}

func TestParseCodeOrder(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse([]byte(strings.Join([]string{
		"order:",
		"  inbox: ''",
		"  outbox: ''",
		"  code:",
		"    zeta: [INBOX]",
		"    alpha: [OUTBOX]",
		"    empty:",
		"    mid: [JUMP alpha]",
	}, "\n")))
	assert.NoError(err)
	if err != nil {
		return
	}

	sol, err := cfg.Get("order")
	assert.NoError(err)
	assert.NoError(sol.Validate())

	labels := []string{}
	for _, block := range sol.Code {
		labels = append(labels, block.Label)
	}
	assert.Equal([]string{"zeta", "alpha", "empty", "mid"}, labels)
	assert.Nil(sol.Code[2].Lines)
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse([]byte("broken:\n  code: [INBOX]\n"))
	assert.ErrorIs(err, ErrCodeSyntax)

	_, err = Parse([]byte("broken:\n  code:\n    start: {a: b}\n"))
	assert.ErrorIs(err, ErrCodeSyntax)

	_, err = Parse([]byte("[unclosed"))
	assert.Error(err)
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse([]byte(strings.Join([]string{
		"no_inbox: {outbox: '1', code: {start: [INBOX]}}",
		"no_outbox: {inbox: '1', code: {start: [INBOX]}}",
		"no_code: {inbox: '1', outbox: '1'}",
		"null_code: {inbox: '1', outbox: '1', code: ~}",
		"nothing:",
	}, "\n")))
	assert.NoError(err)
	if err != nil {
		return
	}

	table := [](struct {
		name  string
		field string
	}){
		{"no_inbox", "inbox"},
		{"no_outbox", "outbox"},
		{"no_code", "code"},
		{"null_code", "code"},
		{"nothing", "inbox"},
	}

	for _, entry := range table {
		sol, err := cfg.Get(entry.name)
		assert.NoError(err, entry.name)
		err = sol.Validate()
		assert.ErrorIs(err, ErrSolutionIncomplete, entry.name)
		var incomplete ErrIncomplete
		if assert.True(errors.As(err, &incomplete), entry.name) {
			assert.Equal(entry.name, incomplete.Name)
			assert.Equal(entry.field, incomplete.Field)
		}
	}

	_, err = cfg.Get("absent")
	assert.ErrorIs(err, ErrSolutionMissing)
	assert.Equal("solution absent not found", err.Error())
}

func TestParseTarget(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		target string
		path   string
		names  []string
		err    error
	}){
		{"office.yaml", "office.yaml", nil, nil},
		{"office.yaml:mail_room", "office.yaml", []string{"mail_room"}, nil},
		{"dir/office.yaml:a:b", "dir/office.yaml", []string{"a", "b"}, nil},
		{":a", "", nil, ErrTargetSyntax},
		{"office.yaml::a", "", nil, ErrTargetSyntax},
	}

	for _, entry := range table {
		path, names, err := ParseTarget(entry.target)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.target)
			continue
		}
		assert.NoError(err, entry.target)
		assert.Equal(entry.path, path, entry.target)
		assert.Equal(entry.names, names, entry.target)
	}
}

func TestRunner(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load(officePath)
	if err != nil {
		t.Fatal(err)
	}

	table := [](struct {
		name         string
		passed       bool
		instructions int
		steps        int
		outbox       []string
		is           error
	}){
		{"mail_room", true, 3, 10, []string{"1", "2", "3"}, nil},
		{"busy_mail_room", true, 3, 37, strings.Fields("B O O T S E Q U E N C E"), nil},
		{"rainy_summer", true, 6, 19, []string{"7", "-2", "4"}, nil},
		{"tripler_room", true, 6, 19, []string{"9", "-3", "0"}, nil},
		{"zero_exterminator", true, 4, 13, []string{"8", "-4"}, nil},
		{"wrong_answer", false, 3, 7, []string{"1", "2"}, nil},
		{"no_outbox", false, 0, 0, nil, ErrSolutionIncomplete},
		{"bad_register", false, 0, 0, nil, cpu.ErrRegisterInvalid},
		{"runaway", false, 0, 0, nil, cpu.ErrStepLimit},
		{"not_there", false, 0, 0, nil, ErrSolutionMissing},
	}

	runner := &Runner{}
	for _, entry := range table {
		result := runner.Run(cfg, entry.name)
		assert.Equal(entry.name, result.Name)
		assert.Equal(entry.passed, result.Passed, entry.name)
		if entry.is != nil {
			assert.ErrorIs(result.Err, entry.is, entry.name)
			assert.True(strings.HasPrefix(result.String(), "ERROR "+entry.name+": "), entry.name)
			continue
		}
		assert.NoError(result.Err, entry.name)
		assert.Equal(entry.instructions, result.Summary.Instructions, entry.name)
		assert.Equal(entry.steps, result.Summary.Steps, entry.name)
		assert.Equal(entry.outbox, result.Summary.Outbox, entry.name)
	}
}

func TestRunnerReport(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load(officePath)
	if err != nil {
		t.Fatal(err)
	}

	runner := &Runner{}

	assert.Equal("PASS mail_room: 3 instructions, 10 steps, outbox (1 2 3)",
		runner.Run(cfg, "mail_room").String())
	assert.Equal("FAIL wrong_answer: 3 instructions, 7 steps, outbox (1 2), expected (1 2 3)",
		runner.Run(cfg, "wrong_answer").String())
	assert.Equal("ERROR not_there: solution not_there not found",
		runner.Run(cfg, "not_there").String())
}

func TestRunnerRunAll(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load(officePath)
	if err != nil {
		t.Fatal(err)
	}

	runner := &Runner{StepLimit: 1000}

	// Every requested name is reported, even after a failure.
	results := runner.RunAll(cfg, "no_outbox", "wrong_answer", "mail_room")
	assert.Equal(3, len(results))
	assert.Error(results[0].Err)
	assert.False(results[1].Passed)
	assert.True(results[2].Passed)

	results = runner.RunAll(cfg)
	assert.Equal(len(cfg.Names()), len(results))
	for n, name := range cfg.Names() {
		assert.Equal(name, results[n].Name)
	}
}

func TestRunnerTrace(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load(officePath)
	if err != nil {
		t.Fatal(err)
	}

	trace := &bytes.Buffer{}
	runner := &Runner{Trace: trace}

	result := runner.Run(cfg, "mail_room")
	assert.True(result.Passed)

	lines := strings.Split(strings.TrimSpace(trace.String()), "\n")
	assert.Equal("== mail_room", lines[0])
	assert.Equal(1+2*10, len(lines))
	assert.Equal("->   3: JUMP 1", lines[6])
}
