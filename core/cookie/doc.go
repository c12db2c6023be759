// Package cookie provides HTTP cookie transport with consistent attribute
// defaults, functional per-call options, size limits, and environment-based
// configuration.
//
// The manager is a thin layer over net/http cookies: it reads, writes, and
// clears cookies but never transforms values. Callers carrying sensitive
// state in cookies should encrypt it before handing it to Set (see
// pkg/secrets and core/rememberme for the persistent-login codec).
//
//	manager := cookie.New(cookie.WithSecure(true))
//
//	if err := manager.Set(w, "prefs", "compact", cookie.WithMaxAge(86400)); err != nil {
//		// value exceeded the size limit
//	}
//
//	value, err := manager.Get(r, "prefs")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//		// no cookie in the request
//	}
//
//	manager.Clear(w, "prefs")
//
// Clear writes an empty value with MaxAge=-1 and an Expires in the past so
// conforming clients drop the cookie immediately.
package cookie
