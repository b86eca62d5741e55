package ttf

import "encoding/binary"

var be = binary.BigEndian
