package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/testutil"
)

type CLISuite struct {
	suite.Suite
	wordsPath string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.wordsPath = filepath.Join(s.T().TempDir(), "words.txt")
	content := "# fixture words\n" + strings.Join(testutil.Words, "\n") + "\n"
	s.Require().NoError(os.WriteFile(s.wordsPath, []byte(content), 0o600))
}

func (s *CLISuite) run(args ...string) (string, error) {
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLISuite) TestMoves_JSON() {
	out, err := s.run("moves", "--dictionary", s.wordsPath, "--rack", "cat", "-o", "json")
	s.Require().NoError(err)

	var list MoveList
	s.Require().NoError(json.Unmarshal([]byte(out), &list))
	s.Equal("CAT", list.Rack)
	s.Require().NotEmpty(list.Moves)
	s.Equal(10, list.Moves[0].Score)

	words := make(map[string]bool)
	for _, m := range list.Moves {
		words[m.Word] = true
	}
	s.True(words["CAT"])
	s.True(words["ACT"])
	s.True(words["AT"])
}

func (s *CLISuite) TestMoves_Text() {
	out, err := s.run("moves", "--dictionary", s.wordsPath, "--rack", "CAT", "--limit", "1")
	s.Require().NoError(err)
	s.Contains(out, "Rack: CAT")
	s.Contains(out, "Moves (1):")
}

func (s *CLISuite) TestMoves_RejectsBadRack() {
	_, err := s.run("moves", "--dictionary", s.wordsPath, "--rack", "C4T")
	s.ErrorIs(err, model.ErrInvalidMoveShape)

	_, err = s.run("moves", "--dictionary", s.wordsPath, "--rack", "ABCDEFGH")
	s.ErrorIs(err, model.ErrRackFull)
}

func (s *CLISuite) TestMoves_RequiresDictionary() {
	_, err := s.run("moves", "--rack", "CAT")
	s.ErrorIs(err, model.ErrLexiconNotFound)
}

func (s *CLISuite) TestSelfPlay() {
	out, err := s.run("selfplay", "--dictionary", s.wordsPath, "--seed", "fixed", "--bots", "greedy,random", "-o", "json")
	s.Require().NoError(err)

	var result SelfPlayResult
	s.Require().NoError(json.Unmarshal([]byte(out), &result))
	s.Contains([]string{string(model.GameStateInProgress), string(model.GameStateOver)}, result.State)
	s.Len(result.Scores, 2)
	s.Len(result.Board, model.BoardSize)
	s.True(result.Stalled || result.State == string(model.GameStateOver))
}

func (s *CLISuite) TestSelfPlay_IsReproducibleWithSeed() {
	first, err := s.run("selfplay", "--dictionary", s.wordsPath, "--seed", "repeat", "-o", "json")
	s.Require().NoError(err)
	second, err := s.run("selfplay", "--dictionary", s.wordsPath, "--seed", "repeat", "-o", "json")
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *CLISuite) TestSelfPlay_UnknownStrategy() {
	_, err := s.run("selfplay", "--dictionary", s.wordsPath, "--bots", "greedy,psychic")
	s.Error(err)
}

func (s *CLISuite) TestLexiconCommands_Redis() {
	mini := miniredis.RunT(s.T())
	redisArgs := []string{"--storage", "redis", "--redis-url", "redis://" + mini.Addr(), "-o", "json"}

	out, err := s.run(append([]string{"lexicon", "import", s.wordsPath, "--name", "fixture"}, redisArgs...)...)
	s.Require().NoError(err)
	var imported ImportResult
	s.Require().NoError(json.Unmarshal([]byte(out), &imported))
	s.Equal("fixture", imported.Lexicon)
	s.Equal(len(testutil.Words), imported.Words)

	out, err = s.run(append([]string{"lexicon", "list"}, redisArgs...)...)
	s.Require().NoError(err)
	var list LexiconList
	s.Require().NoError(json.Unmarshal([]byte(out), &list))
	s.Equal([]LexiconInfo{{Name: "fixture", Words: len(testutil.Words)}}, list.Lexicons)

	// Stored words are enough for later commands
	_, err = s.run(append([]string{"moves", "--rack", "DOG", "--lexicon", "fixture"}, redisArgs...)...)
	s.Require().NoError(err)

	_, err = s.run(append([]string{"lexicon", "delete", "fixture"}, redisArgs...)...)
	s.Require().NoError(err)
	out, err = s.run(append([]string{"lexicon", "list"}, redisArgs...)...)
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal([]byte(out), &list))
	s.Empty(list.Lexicons)
}

func (s *CLISuite) TestLexiconList_TextWhenEmpty() {
	out, err := s.run("lexicon", "list")
	s.Require().NoError(err)
	s.Equal("No lexicons stored\n", out)
}

func (s *CLISuite) TestConfig_Defaults() {
	c, err := LoadConfig(newViper(), "")
	s.Require().NoError(err)
	s.Equal(DefaultConfig(), c)
}

func (s *CLISuite) TestConfig_FromEnvironment() {
	s.T().Setenv("SCRABBLE_BINGO_BONUS", "35")
	s.T().Setenv("SCRABBLE_STORAGE_TYPE", "redis")
	s.T().Setenv("SCRABBLE_VALIDATE_WORDS", "false")

	c, err := LoadConfig(newViper(), "")
	s.Require().NoError(err)
	s.Equal(35, c.BingoBonus)
	s.Equal("redis", c.StorageType)
	s.False(c.ValidateWords)

	fc := c.FactoryConfig(testutil.NopLogger())
	s.Equal(35, fc.Scoring.BingoBonus)
	s.Equal(7, fc.Scoring.BingoTiles)
	s.Require().NotNil(fc.RedisConfig)
	s.Equal(c.RedisURL, fc.RedisConfig.URL)
}

func (s *CLISuite) TestConfig_FromFile() {
	path := filepath.Join(s.T().TempDir(), "scrabble.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("lexicon: custom\noutput: json\ncache_size: 16\n"), 0o600))

	c, err := LoadConfig(newViper(), path)
	s.Require().NoError(err)
	s.Equal("custom", c.Lexicon)
	s.Equal(OutputJSON, c.Output)
	s.Equal(16, c.CacheSize)
}

func (s *CLISuite) TestConfig_MissingFile() {
	_, err := LoadConfig(newViper(), filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Error(err)
}

func (s *CLISuite) TestConfig_RejectsOutputFormat() {
	s.T().Setenv("SCRABBLE_OUTPUT", "xml")
	_, err := LoadConfig(newViper(), "")
	s.Error(err)
}

func (s *CLISuite) TestFlagsOverrideEnvironment() {
	s.T().Setenv("SCRABBLE_BINGO_BONUS", "35")
	s.T().Setenv("SCRABBLE_LEXICON", "from-env")

	_, err := s.run("lexicon", "list", "--bingo-bonus", "20")
	s.Require().NoError(err)
	s.Equal(20, cfg.BingoBonus)
	s.Equal("from-env", cfg.Lexicon)
}
