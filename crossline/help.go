package crossline

// HelpText is the full shortcuts reference shown on <F1>, ported
// verbatim from s_crossline_help in original_source/crossline.c.
var HelpText = []string{
	" Misc Commands",
	" +-------------------------+--------------------------------------------------+",
	" | F1                      |  Show edit shortcuts help.                       |",
	" | Ctrl-^                  |  Enter keyboard debugging mode.                  |",
	" +-------------------------+--------------------------------------------------+",
	" Move Commands",
	" +-------------------------+--------------------------------------------------+",
	" | Ctrl-B, Left            |  Move back a character.                          |",
	" | Ctrl-F, Right           |  Move forward a character.                       |",
	" | Alt-B, ESC+Left,        |  Move back a word.                               |",
	" |    Ctrl-Left, Alt-Left  |  (Ctrl-Left, Alt-Left only support Windows/Xterm)|",
	" | Alt-F, ESC+Right,       |  Move forward a word.                            |",
	" |   Ctrl-Right, Alt-Right | (Ctrl-Right,Alt-Right only support Windows/Xterm)|",
	" | Ctrl-A, Home            |  Move cursor to start of line.                   |",
	" | Ctrl-E, End             |  Move cursor to end of line.                     |",
	" | Ctrl-L                  |  Clear screen and redisplay line.                |",
	" +-------------------------+--------------------------------------------------+",
	" Edit Commands",
	" +-------------------------+--------------------------------------------------+",
	" | Ctrl-H, Backspace       |  Delete character before cursor.                 |",
	" | Ctrl-D, DEL             |  Delete character under cursor.                  |",
	" | Alt-U,  ESC+Up,         |  Uppercase current or following word.            |",
	" |   Ctrl-Up,  Alt-Up      |  (Ctrl-Up, Alt-Up only supports Windows/Xterm)   |",
	" | Alt-L,  ESC+Down,       |  Lowercase current or following word.            |",
	" |   Ctrl-Down, Alt-Down   |  (Ctrl-Down, Alt-Down only support Windows/Xterm)|",
	" | Alt-C                   |  Capitalize current or following word.           |",
	" | Alt-\\                   |  Delete whitespace around cursor.                |",
	" | Ctrl-T                  |  Transpose character.                            |",
	" +-------------------------+--------------------------------------------------+",
	" Cut&Paste Commands",
	" +-------------------------+--------------------------------------------------+",
	" | Ctrl-K, ESC+End,        |  Cut from cursor to end of line.                 |",
	" |   Ctrl-End, Alt-End     |  (Ctrl-End, Alt-End only support Windows/Xterm)  |",
	" | Ctrl-U, ESC+Home,       |  Cut from start of line to cursor.               |",
	" |   Ctrl-Home, Alt-Home   |  (Ctrl-Home, Alt-Home only support Windows/Xterm)|",
	" | Ctrl-X                  |  Cut whole line.                                 |",
	" | Alt-Backspace,          |  Cut word to left of cursor.                     |",
	" |    Esc+Backspace,       |                                                  |",
	" |    Clt-Backspace        |  (Clt-Backspace only supports Windows/Xterm)     |",
	" | Alt-D, ESC+Del,         |  Cut word following cursor.                      |",
	" |    Alt-Del, Ctrl-Del    |  (Alt-Del,Ctrl-Del only support Windows/Xterm)   |",
	" | Ctrl-W                  |  Cut to left till whitespace (not word).         |",
	" | Ctrl-Y, Ctrl-V, Insert  |  Paste last cut text.                            |",
	" +-------------------------+--------------------------------------------------+",
	" Complete Commands",
	" +-------------------------+--------------------------------------------------+",
	" | TAB, Ctrl-I             |  Autocomplete.                                   |",
	" | Alt-=, Alt-?            |  List possible completions.                      |",
	" +-------------------------+--------------------------------------------------+",
	" History Commands",
	" +-------------------------+--------------------------------------------------+",
	" | Ctrl-P, Up              |  Fetch previous line in history.                 |",
	" | Ctrl-N, Down            |  Fetch next line in history.                     |",
	" | Alt-<,  PgUp            |  Move to first line in history.                  |",
	" | Alt->,  PgDn            |  Move to end of input history.                   |",
	" | Ctrl-R, Ctrl-S          |  Search history.                                 |",
	" | F4                      |  Search history with current input.              |",
	" | F1                      |  Show search help when in search mode.           |",
	" | F2                      |  Show history.                                   |",
	" | F3                      |  Clear history (need confirm).                   |",
	" +-------------------------+--------------------------------------------------+",
	" Control Commands",
	" +-------------------------+--------------------------------------------------+",
	" | Enter,  Ctrl-J, Ctrl-M  |  EOL and accept line.                            |",
	" | Ctrl-C, Ctrl-G          |  EOF and abort line.                             |",
	" | Ctrl-D                  |  EOF if line is empty.                           |",
	" | Alt-R                   |  Revert line.                                    |",
	" | Ctrl-Z                  |  Suspend Job. (Linux Only, fg will resume edit)  |",
	" +-------------------------+--------------------------------------------------+",
	" Note: If Alt-key doesn't work, an alternate way is to press ESC first then press key, see above ESC+Key.",
}

// SearchHelpText explains history-search pattern syntax, shown on <F1>
// while in search mode. Ported verbatim from s_search_help.
var SearchHelpText = []string{
	"Patterns are separated by ' ', patter match is case insensitive:",
	"    select:   choose line including 'select'",
	"    -select:  choose line excluding 'select'",
	`    "select from":  choose line including "select from"`,
	`    -"select from": choose line excluding "select from"`,
	"Example:",
	`    "select from" where -"order by" -limit:  `,
	`         choose line including "select from" and 'where'`,
	"         and excluding \"order by\" or 'limit'",
}
