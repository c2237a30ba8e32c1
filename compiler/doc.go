/*

Process of parsing

Expression Text ->
	front.Tokenize / front.Scanner ->
Tokens (front.Token) ->
	front.Parse ->
Abstract Syntax Tree (ast) ->
	format ->
Expression Text

Unary minus has no node of its own: -x is parsed as 0 - x.

*/
package compiler
