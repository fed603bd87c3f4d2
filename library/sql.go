package library

const createRepertoireTable = `
CREATE TABLE IF NOT EXISTS repertoires (
  name varchar not null primary key,
  start string not null,
  nodes int not null,
  added datetime not null,
  body text not null
)`

const insertStmt = `
INSERT OR REPLACE INTO repertoires (name, start, nodes, added, body)
VALUES (:name, :start, :nodes, :added, :body)
`

const selectEntries = `
SELECT name, start, nodes, added FROM repertoires ORDER BY name
`

const selectBody = `
SELECT body FROM repertoires WHERE name = ?
`
