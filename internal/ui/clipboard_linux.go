//go:build linux || freebsd || netbsd || openbsd

package ui

/*
#cgo LDFLAGS: -lX11
#include <X11/Xlib.h>
#include <X11/Xatom.h>
#include <stdlib.h>
#include <string.h>
#include <time.h>

// serveX11Clipboard owns the CLIPBOARD selection and answers paste requests
// with text until another client claims it or 30 seconds pass. It opens its
// own Display so the game loop never blocks on X.
static void serveX11Clipboard(const char *text, int textLen) {
    Display *dpy = XOpenDisplay(NULL);
    if (!dpy) return;

    Window win = XCreateSimpleWindow(dpy, DefaultRootWindow(dpy), 0, 0, 1, 1, 0, 0, 0);
    Atom clipboard = XInternAtom(dpy, "CLIPBOARD", False);
    Atom utf8str = XInternAtom(dpy, "UTF8_STRING", False);
    Atom targets = XInternAtom(dpy, "TARGETS", False);

    XSetSelectionOwner(dpy, clipboard, win, CurrentTime);
    XFlush(dpy);
    if (XGetSelectionOwner(dpy, clipboard) != win) {
        XDestroyWindow(dpy, win);
        XCloseDisplay(dpy);
        return;
    }

    struct timespec start, now;
    clock_gettime(CLOCK_MONOTONIC, &start);
    for (;;) {
        clock_gettime(CLOCK_MONOTONIC, &now);
        if ((now.tv_sec - start.tv_sec) > 30) break;

        if (XPending(dpy) == 0) {
            struct timespec ts = {0, 50000000};
            nanosleep(&ts, NULL);
            continue;
        }

        XEvent ev;
        XNextEvent(dpy, &ev);
        if (ev.type == SelectionClear) break;
        if (ev.type != SelectionRequest) continue;

        XSelectionRequestEvent *req = &ev.xselectionrequest;
        Atom prop = req->property ? req->property : req->target;
        XSelectionEvent resp;
        memset(&resp, 0, sizeof(resp));
        resp.type = SelectionNotify;
        resp.requestor = req->requestor;
        resp.selection = req->selection;
        resp.target = req->target;
        resp.time = req->time;
        resp.property = None;

        if (req->target == targets) {
            Atom supported[] = {targets, utf8str, XA_STRING};
            XChangeProperty(dpy, req->requestor, prop, XA_ATOM, 32, PropModeReplace,
                (unsigned char*)supported, 3);
            resp.property = prop;
        } else if (req->target == utf8str || req->target == XA_STRING) {
            XChangeProperty(dpy, req->requestor, prop, utf8str, 8, PropModeReplace,
                (unsigned char*)text, textLen);
            resp.property = prop;
        }
        XSendEvent(dpy, req->requestor, False, 0, (XEvent*)&resp);
        XFlush(dpy);
    }

    XDestroyWindow(dpy, win);
    XCloseDisplay(dpy);
}
*/
import "C"
import "unsafe"

// writeClipboard serves text on the X11 clipboard from a background goroutine.
func writeClipboard(text string) {
	cstr := C.CString(text)
	clen := C.int(len(text))
	go func() {
		C.serveX11Clipboard(cstr, clen)
		C.free(unsafe.Pointer(cstr))
	}()
}
