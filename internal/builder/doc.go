/*
Package builder resolves a configuration document into a *model.Application.
It acts as the bridge between the untyped configuration tree (defined in the
'config' package) and the renderers (the 'render' package).

The build is a multi-phase process, each phase depending on the previous one
completing successfully:

 1. Application Lookup: The builder finds the single top-level node whose
    class is the application marker. Zero or several candidates abort the
    build.

 2. State and Thread Construction: For each State under the states root and
    each Thread under its threads root, the thread's execution list is read
    and every entry is handed to the function resolver. The resolver expands
    group nodes depth-first, left to right, so a group reference schedules
    all of its leaf modules in declaration order. Each leaf becomes a
    Function identified by its qualified name; a Function referenced a second
    time is looked up rather than recreated, and the thread receives the
    shared reference.

 3. Data Source Registry: The flat list under the data root becomes the set
    of DataSources, first occurrence per name winning.

 4. Signal Linking: Once every Function exists, each one is visited a single
    time and its input and output signals are bound to registered
    DataSources. Bindings naming an unknown data source are dropped.

Any navigation or attribute failure aborts the build and no partial
application is returned. Traversal uses immutable config.Cursor values, so
recursion needs no cursor bookkeeping.
*/
package builder
