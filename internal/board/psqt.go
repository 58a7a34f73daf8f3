package board

// Piece-square contributions used to incrementally maintain a position's
// midgame/endgame score as moves are made and unmade, mirroring psqt.c's
// separation from the rest of the evaluator: placement tables live here,
// independent of whatever evaluation weights internal/engine layers on top.
// Values are White-relative and already include the piece's base material
// value, the way Ethereal folds PieceValues into its PSQT table.

var basePieceValueMg = [6]int{82, 337, 365, 477, 1025, 0}
var basePieceValueEg = [6]int{94, 281, 297, 512, 936, 0}

var pawnPSQTMg = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	-23, 12, -5, -5, -5, -5, 12, -23,
	-27, -4, -6, -2, -2, -6, -4, -27,
	-21, -7, 4, 2, 2, 4, -7, -21,
	-12, 2, -1, 3, 3, -1, 2, -12,
	0, 11, 16, 20, 20, 16, 11, 0,
	-53, -34, -4, 0, 0, -4, -34, -53,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pawnPSQTEg = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	2, 3, 6, 0, 0, 6, 3, 2,
	0, 0, -6, -11, -11, -6, 0, 0,
	7, 6, -9, -23, -23, -9, 6, 7,
	14, 9, -3, -23, -23, -3, 9, 14,
	26, 25, 4, -23, -23, 4, 25, 26,
	2, 6, -19, -36, -36, -19, 6, 2,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPSQTMg = [64]int{
	-174, -100, -162, -50, -50, -162, -100, -174,
	-42, -43, 45, 14, 14, 45, -43, -42,
	-29, 30, 45, 53, 53, 45, 30, -29,
	26, 37, 39, 49, 49, 39, 37, 26,
	4, 30, 31, 40, 40, 31, 30, 4,
	4, 26, 15, 30, 30, 15, 26, 4,
	8, 5, 15, 19, 19, 15, 5, 8,
	-44, 3, -14, 10, 10, -14, 3, -44,
}

var knightPSQTEg = [64]int{
	-35, -32, -12, -29, -29, -12, -32, -35,
	-26, 5, -34, -5, -5, -34, 5, -26,
	7, 5, 38, 35, 35, 38, 5, 7,
	5, 13, 40, 42, 42, 40, 13, 5,
	7, 9, 32, 35, 35, 32, 9, 7,
	-22, -19, 4, 12, 12, 4, -19, -22,
	-53, -13, -26, -4, -4, -26, -13, -53,
	-52, -40, -17, -8, -8, -17, -40, -52,
}

var bishopPSQTMg = [64]int{
	-54, -67, -136, -119, -119, -136, -67, -54,
	-67, 0, -10, -40, -40, -10, 0, -67,
	-6, 0, 28, 22, 22, 28, 0, -6,
	-12, 26, 5, 33, 33, 5, 26, -12,
	11, 13, 11, 34, 34, 11, 13, 11,
	25, 31, 24, 20, 20, 24, 31, 25,
	36, 33, 25, 10, 10, 25, 33, 36,
	22, 24, 2, 20, 20, 2, 24, 22,
}

var bishopPSQTEg = [64]int{
	0, -4, 4, 11, 11, 4, -4, 0,
	0, -4, -14, 0, 0, -14, -4, 0,
	7, 7, 7, 5, 5, 7, 7, 7,
	12, 4, 17, 20, 20, 17, 4, 12,
	-5, -1, 14, 19, 19, 14, -1, -5,
	-11, -14, 0, 7, 7, 0, -14, -11,
	-31, -24, -15, -2, -2, -15, -24, -31,
	-24, -27, -9, -14, -14, -9, -27, -24,
}

var rookPSQTMg = [64]int{
	1, 16, -24, 11, 11, -24, 16, 1,
	-4, -8, 39, 22, 22, 39, -8, -4,
	-20, 17, 16, 22, 22, 16, 17, -20,
	-16, -14, 19, 23, 23, 19, -14, -16,
	-21, -10, -2, 0, 0, -2, -10, -21,
	-22, 5, 0, 3, 3, 0, 5, -22,
	-36, -6, 2, 11, 11, 2, -6, -36,
	-5, -7, 5, 11, 11, 5, -7, -5,
}

var rookPSQTEg = [64]int{
	23, 14, 23, 31, 31, 23, 14, 23,
	17, 16, 3, 10, 10, 3, 16, 17,
	13, 8, 14, 15, 15, 14, 8, 13,
	11, 8, 6, 7, 7, 6, 8, 11,
	-2, 4, 2, 2, 2, 2, 4, -2,
	-22, -14, -19, -21, -21, -19, -14, -22,
	-27, -29, -20, -26, -26, -20, -29, -27,
	-33, -18, -14, -20, -20, -14, -18, -33,
}

var queenPSQTMg = [64]int{
	-3, -11, -5, 14, 14, -5, -11, -3,
	5, 13, 20, 15, 15, 20, 13, 5,
	6, 23, 8, 5, 5, 8, 23, 6,
	5, 11, -2, -3, -3, -2, 11, 5,
	-10, -13, -4, -20, -20, -4, -13, -10,
	-11, -2, 2, -5, -5, 2, -2, -11,
	-25, -18, 5, 3, 3, 5, -18, -25,
	-52, -38, -52, -16, -16, -52, -38, -52,
}

var queenPSQTEg = [64]int{
	-49, -31, -21, -41, -41, -21, -31, -49,
	-52, -38, -52, -16, -16, -52, -38, -52,
	-25, -18, 5, 3, 3, 5, -18, -25,
	-6, 4, 15, 47, 47, 15, 4, -6,
	9, 34, 21, 52, 52, 21, 34, 9,
	3, 19, 20, 48, 48, 20, 19, 3,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var kingPSQTMg = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingPSQTEg = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

var pieceSQTableMg = [6]*[64]int{&pawnPSQTMg, &knightPSQTMg, &bishopPSQTMg, &rookPSQTMg, &queenPSQTMg, &kingPSQTMg}
var pieceSQTableEg = [6]*[64]int{&pawnPSQTEg, &knightPSQTEg, &bishopPSQTEg, &rookPSQTEg, &queenPSQTEg, &kingPSQTEg}

// psqtValue returns the (mg, eg) contribution of a piece on a square, signed
// from White's perspective: positive for White pieces, negative for Black.
func psqtValue(c Color, pt PieceType, sq Square) (mg, eg int) {
	relSq := sq
	if c == Black {
		relSq = sq.Mirror()
	}

	mg = basePieceValueMg[pt] + pieceSQTableMg[pt][relSq]
	eg = basePieceValueEg[pt] + pieceSQTableEg[pt][relSq]

	if c == Black {
		return -mg, -eg
	}
	return mg, eg
}
