// gui_clip.go - Clip arithmetic (§4.2)

package main

// ClipChildBounds intersects one axis of a parent's draw request
// (reqOffset, reqLength) with one axis of a child whose origin is
// childOffset (possibly negative) in parent coordinates and whose extent is
// childLength. It returns the sub-interval of the request that lies inside
// the child, expressed in child coordinates. visible is false when the
// intersection is empty.
func ClipChildBounds(childOffset int64, childLength uint32, reqOffset, reqLength uint32) (newOffset, newLength uint32, visible bool) {
	if childLength == 0 {
		return 0, 0, false
	}

	var posChildOffset uint32
	if childOffset >= 0 {
		posChildOffset = uint32(childOffset)
	} else {
		if int64(childLength)-(-childOffset) <= 0 {
			return 0, 0, false
		}
		posChildOffset = 0
		childLength = uint32(int64(childLength) + childOffset)
	}

	newOffset = reqOffset
	newLength = reqLength

	if newOffset >= posChildOffset {
		// The requested offset starts within or past the child.
		offsetDelta := newOffset - posChildOffset
		if childLength <= offsetDelta {
			return 0, 0, false
		}
		newOffset -= posChildOffset
	} else {
		// The requested offset ends within or before the child.
		offsetDelta := posChildOffset - newOffset
		if newLength <= offsetDelta {
			return 0, 0, false
		}
		newOffset = 0
		newLength -= offsetDelta
	}

	if newLength > childLength-newOffset {
		newLength = childLength - newOffset
	}

	if childOffset < 0 {
		newOffset = uint32(int64(newOffset) + (-childOffset))
	}

	return newOffset, newLength, true
}
