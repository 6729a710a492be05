/*
Package project maps a directory of files onto the editor state of a remote
script.

A project directory looks like:

	fumosync.json      name, script ID, whitelist and publicity
	README.md          the script's description
	init.server.luau   the script's main source
	pkg/<name>.luau    one file per module
	types.d.luau       editor type definitions, written once by Init
	.vscode/           editor settings, written once by Init

Init creates the skeleton, Pull fills it from a remote script and links the
two through fumosync.json, and Push sends the local contents back as a list
of editor updates. Pull followed by an unmodified Push reproduces the
script that was pulled.
*/
package project
