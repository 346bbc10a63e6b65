package rest

import "html/template"

var boardPage = template.Must(template.New("board").Funcs(template.FuncMap{"rows": boardRows}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Tic-tac-toe</title>
<style>
.game { display: flex; flex-direction: column; align-items: center; font-family: sans-serif; }
.status { margin: 10px 0; font-weight: bold; font-size: 18px; color: #555; }
.board { background: #eee; padding: 20px; border: 3px solid #ccc; border-radius: 12px; }
.board-row { display: flex; }
.square { width: 60px; height: 60px; margin: 4px; font-size: 20px; background: #ddd; border: none; border-radius: 8px; }
.square:disabled { cursor: not-allowed; }
.reset { margin: 20px 0; width: 100px; height: 50px; font-size: 18px; color: white; background: #6ab4e1; border: none; border-radius: 8px; }
.celebrate { font-size: 32px; animation: pop 0.5s ease-in; }
@keyframes pop { from { opacity: 0; } to { opacity: 1; } }
</style>
</head>
<body>
<div class="game">
  <div id="statusArea" class="status">{{.Status}}</div>
  {{if .Celebrate}}<div id="winnerArea" class="celebrate">&#127881; {{.Winner}} wins! &#127881;</div>{{end}}
  <form method="post" action="/reset"><button class="reset" type="submit">Reset</button></form>
  <div class="board">
    {{range $row := rows}}<div class="board-row">
      {{range $cell := $row}}<form method="post" action="/cells/{{$cell}}"><button class="square" type="submit"{{if not (index $.Playable $cell)}} disabled{{end}}>{{index $.Board $cell}}</button></form>
      {{end}}
    </div>
    {{end}}
  </div>
</div>
</body>
</html>
`))

// boardRows - cell indexes of the board, row by row.
func boardRows() [][3]int {
	return [][3]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}
}
