package compiler

// GREETING prints "Hello, World!" and a newline.
const GREETING = `+++++++++++
[>++++++>+++++++++>++++++++>++++>+++>+<<<<<<-]  ; 66 99 88 44 33 11
>++++++.                                        ; H
>++.+++++++..+++.                               ; ello
>>.                                             ; comma
>-.                                             ; space
<<-.<.+++.------.--------.                      ; World
>>>+.                                           ; !
>-.                                             ; newline
`
